package domain

// PanoramaConfig is the viewer configuration for a monastery's virtual tour,
// shaped the way the browser panorama library consumes it.
type PanoramaConfig struct {
	Default PanoramaDefaults         `json:"default"`
	Scenes  map[string]PanoramaScene `json:"scenes"`
}

type PanoramaDefaults struct {
	FirstScene        string `json:"firstScene"`
	Author            string `json:"author"`
	SceneFadeDuration int    `json:"sceneFadeDuration"`
	AutoLoad          bool   `json:"autoLoad"`
}

type PanoramaScene struct {
	Title    string    `json:"title"`
	HFOV     float64   `json:"hfov"`
	Pitch    float64   `json:"pitch"`
	Yaw      float64   `json:"yaw"`
	Type     string    `json:"type"`
	Panorama string    `json:"panorama"`
	HotSpots []HotSpot `json:"hotSpots"`
}

type HotSpot struct {
	Pitch   float64 `json:"pitch"`
	Yaw     float64 `json:"yaw"`
	Type    string  `json:"type"`
	Text    string  `json:"text"`
	SceneID string  `json:"sceneId,omitempty"`
}
