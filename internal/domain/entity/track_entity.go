package entity

// Track is a playable song from the music catalog.
type Track struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Artist        string `json:"artist"`
	Duration      int    `json:"duration"`
	Audio         string `json:"audio"`
	AudioDownload string `json:"audiodownload"`
	Image         string `json:"image"`
	Album         string `json:"album"`
}
