package background

import "github.com/tilsley/gallery/pkg/api"

// DefaultPresets are available when the config file defines none.
func DefaultPresets() map[string]api.BackgroundConfig {
	return map[string]api.BackgroundConfig{
		"ocean_girl": {
			Pc: api.BackgroundSide{
				Type: api.BackgroundTypePic,
				DataInfo: api.DataInfo{
					Title:   "Ocean girl",
					Preview: "/img/wallpaper/static/ocean-girl/preview.jpg",
					Url:     "/img/wallpaper/static/ocean-girl/image.jpg",
				},
			},
			Mobile: api.BackgroundSide{
				Type: api.BackgroundTypePic,
				DataInfo: api.DataInfo{
					Title:   "Ocean girl",
					Preview: "/img/wallpaper/static-mobile/ocean-girl/preview.jpg",
					Url:     "/img/wallpaper/static-mobile/ocean-girl/image.jpg",
				},
			},
		},
		"nier_automata": {
			Pc: api.BackgroundSide{
				Type: api.BackgroundTypeVideo,
				DataInfo: api.DataInfo{
					Title:   "NieR:Automata",
					Preview: "/img/wallpaper/dynamic/nier/preview.jpg",
					Url:     "/img/wallpaper/dynamic/nier/nier.webm",
				},
			},
			Mobile: api.BackgroundSide{
				Type: api.BackgroundTypeVideo,
				DataInfo: api.DataInfo{
					Title:   "NieR:Automata",
					Preview: "/img/wallpaper/dynamic-mobile/nier/preview.jpg",
					Url:     "/img/wallpaper/dynamic-mobile/nier/nier.mp4",
				},
			},
		},
	}
}
