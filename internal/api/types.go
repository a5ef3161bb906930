package api

import "time"

// User is the backend's view of an account.
type User struct {
	ID                           int        `json:"id"`
	Email                        string     `json:"email"`
	FullName                     *string    `json:"full_name,omitempty"`
	IsActive                     bool       `json:"is_active"`
	AuthProvider                 string     `json:"auth_provider,omitempty"`
	LastLoginAt                  *time.Time `json:"last_login_at,omitempty"`
	LastLoginIP                  *string    `json:"last_login_ip,omitempty"`
	TwoFactorEnabled             bool       `json:"is_2fa_enabled"`
	SecurityNotificationsEnabled bool       `json:"security_notifications_enabled"`
}

// Session is one authenticated device/browser. IDs are UUIDs.
type Session struct {
	ID              string    `json:"id"`
	DeviceType      *string   `json:"device_type,omitempty"`
	BrowserName     *string   `json:"browser_name,omitempty"`
	BrowserVersion  *string   `json:"browser_version,omitempty"`
	OSName          *string   `json:"os_name,omitempty"`
	OSVersion       *string   `json:"os_version,omitempty"`
	IPAddress       *string   `json:"ip_address,omitempty"`
	LocationCity    *string   `json:"location_city,omitempty"`
	LocationCountry *string   `json:"location_country,omitempty"`
	LastActiveAt    time.Time `json:"last_active_at"`
	IsCurrent       bool      `json:"is_current"`
}

// TwoFactorSetup is the ephemeral enrollment material. It must be
// fetched fresh for every enrollment attempt and never reused.
type TwoFactorSetup struct {
	Secret       string `json:"secret"`
	OTPAuthURL   string `json:"otpauth_url"`
	QRCodeBase64 string `json:"qr_code_base64,omitempty"`
}

// Ingredient is one line of a recipe's ingredient list.
type Ingredient struct {
	Item     string  `json:"item"`
	Quantity *string `json:"quantity,omitempty"`
	Unit     *string `json:"unit,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}

// Step is one instruction in a recipe.
type Step struct {
	StepNumber      int     `json:"step_number"`
	Instruction     string  `json:"instruction"`
	DurationSeconds *int    `json:"duration_seconds,omitempty"`
	Time            *string `json:"time,omitempty"`
}

// Recipe is a saved or freshly extracted recipe.
type Recipe struct {
	ID              int          `json:"id,omitempty"`
	Title           string       `json:"title"`
	Description     *string      `json:"description,omitempty"`
	VideoURL        string       `json:"video_url"`
	ThumbnailURL    *string      `json:"thumbnail_url,omitempty"`
	Servings        *int         `json:"servings,omitempty"`
	PrepTimeMinutes *int         `json:"prep_time_minutes,omitempty"`
	CookTimeMinutes *int         `json:"cook_time_minutes,omitempty"`
	Ingredients     []Ingredient `json:"ingredients"`
	Steps           []Step       `json:"steps"`
	DietaryTags     []string     `json:"dietary_tags"`
	IsPublic        bool         `json:"is_public,omitempty"`
	CreatedAt       *time.Time   `json:"created_at,omitempty"`
}
