package api

// BackgroundType is the media kind of a background side.
type BackgroundType string

// Defines values for BackgroundType.
const (
	BackgroundTypePic   BackgroundType = "pic"
	BackgroundTypeVideo BackgroundType = "video"
)

// DataInfo describes the media shown as a background.
type DataInfo struct {
	Title   string `json:"title"   yaml:"title"`
	Preview string `json:"preview" yaml:"preview"`
	Url     string `json:"url"     yaml:"url"`
}

// BackgroundSide is the background for a single device class.
type BackgroundSide struct {
	Type     BackgroundType `json:"type"     yaml:"type"`
	DataInfo DataInfo       `json:"datainfo" yaml:"datainfo"`
}

// BackgroundConfig is the remote background configuration consumed by the
// host application.
type BackgroundConfig struct {
	Pc     BackgroundSide `json:"pc"     yaml:"pc"`
	Mobile BackgroundSide `json:"mobile" yaml:"mobile"`
}

// PresetList is returned by GET /background/presets.
type PresetList struct {
	Presets []string `json:"presets"`
}
