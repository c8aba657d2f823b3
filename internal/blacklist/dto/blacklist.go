package dto

type CreateBlacklistInput struct {
	Email         string  `json:"email" validate:"required"`
	AppUUID       string  `json:"app_uuid" validate:"required,app_uuid"`
	BlockedReason *string `json:"blocked_reason"`
	IPAddress     string  `json:"-"`
}

type BlacklistStatusOutput struct {
	Blacklisted   bool    `json:"blacklisted"`
	BlockedReason *string `json:"blocked_reason"`
}

type MessageOutput struct {
	Message string `json:"message"`
}

type HealthOutput struct {
	Healthy bool `json:"healthy"`
}
