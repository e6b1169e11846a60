package models

// Partner is the simulated chat counterpart returned by the matching stub.
type Partner struct {
	ID          string  `json:"id"`
	DisplayName string  `json:"display_name"`
	AvatarURL   *string `json:"avatar_url"`
	Gender      string  `json:"gender"`
}

// ChatStats holds the placeholder chat statistics.
type ChatStats struct {
	TotalChats      int `json:"total_chats"`
	TotalTime       int `json:"total_time"`
	AverageDuration int `json:"average_duration"`
}
