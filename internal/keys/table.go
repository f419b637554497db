package keys

// Group is a named block of configuration keys that belong to the same
// settings domain on the device.
type Group struct {
	Name string
	Keys []string
}

// table is the recognized configuration vocabulary, in the order the device
// documents it. Entries may repeat across groups; only membership matters.
var table = []Group{
	{Name: "touchscreen", Keys: []string{
		"touchscreen_enabled",
		"touchscreen_preview",
		"touchscreen_info",
		"touchscreen_settings",
		"touchscreen_recordctl",
		"touchscreen_timeout",
		"touchscreen_backlight",
	}},
	{Name: "http", Keys: []string{
		"http_usessl",
		"http_port",
		"http_sport",
	}},
	{Name: "access_control", Keys: []string{
		"allowips",
		"denyips",
	}},
	{Name: "system", Keys: []string{
		"description",
		"multicast_ip",
		"multicast_rate_limit",
	}},
	{Name: "firmware", Keys: []string{
		"frmcheck_enabled",
	}},
	{Name: "upnp", Keys: []string{
		"share_livestreams",
		"share_archive",
		"server_name",
	}},
	{Name: "broadcast", Keys: []string{
		"bcast_disabled",
		"streamport",
		"rtsp_port",
	}},
	{Name: "encoder", Keys: []string{
		"framesize",
		"autoframesize",
		"fpslimit",
		"vbitrate",
		"vencpreset",
		"vprofile",
		"vkeyframeinterval",
		"slicemode",
		"qvalue",
		"codec",
		"audio",
		"audiopreset",
		"audiobitrate",
		"audiochannels",
	}},
	{Name: "external_encoder", Keys: []string{
		"type",
		"timelabel",
		"pip_layout",
		"bgcolor",
		"vgadvi",
		"keep_aspect_ratio",
	}},
	{Name: "layout", Keys: []string{
		"active_layout",
	}},
	{Name: "stream_access_control", Keys: []string{
		"ac_override",
		"ac_viewerpwd",
		"ac_allowips",
		"ac_denyips",
	}},
	{Name: "publish", Keys: []string{
		"publish_enabled",
		"publish_type",
	}},
	// publish_type 2
	{Name: "rtsp_announce", Keys: []string{
		"rtsp_url",
		"rtsp_transport",
		"rtsp_username",
		"rtsp_password",
	}},
	// publish_type 6 and 7
	{Name: "rtmp", Keys: []string{
		"rtmp_url",
		"rtmp_stream",
		"rtmp_username",
		"rtmp_password",
	}},
	// publish_type 8
	{Name: "livestream", Keys: []string{
		"livestream_channel",
		"livestream_username",
		"livestream_password",
	}},
	// publish_type 3
	{Name: "rtp_udp", Keys: []string{
		"unicast_address",
		"unicast_aport",
		"unicast_vport",
	}},
	// publish_type 4 and 5
	{Name: "mpegts", Keys: []string{
		"unicast_address",
		"unicast_address",
		"unicast_mport",
		"sap",
		"sap_ip",
		"sap_group",
		"sap_channel_no",
	}},
	{Name: "metadata", Keys: []string{
		"title",
		"author",
		"copyright",
		"comment",
	}},
	{Name: "recorder", Keys: []string{
		"rec_enabled",
		"rec_sizelimit",
		"rec_timelimit",
		"rec_format",
		"rec_prefix",
		"rec_upnp",
	}},
}

// publishGroups maps a publish_type value to the group holding its
// destination settings.
var publishGroups = map[string]string{
	"2": "rtsp_announce",
	"3": "rtp_udp",
	"4": "mpegts",
	"5": "mpegts",
	"6": "rtmp",
	"7": "rtmp",
	"8": "livestream",
}
