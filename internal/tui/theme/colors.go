package theme

import "charm.land/lipgloss/v2"

var (
	ColorBlack = lipgloss.Color("#000000")
	ColorWhite = lipgloss.Color("#FFFFFF")
	ColorDim   = lipgloss.Color("#6B7280")
)

var (
	ColorSleep     = lipgloss.Color("#7C8CF8") // sleep gauge and hypnogram
	ColorReadiness = lipgloss.Color("#5EC8D8") // readiness gauge
	ColorActivity  = lipgloss.Color("#F2A65A") // activity gauge
	ColorHeartRate = lipgloss.Color("#EF6A7A") // heart-rate sparkline
)

// score bands
var (
	ColorOptimal      = lipgloss.Color("#4ADE80") // 85-100
	ColorGood         = lipgloss.Color("#FACC15") // 70-84
	ColorPayAttention = lipgloss.Color("#F97316") // 1-69
	ColorNotAvailable = lipgloss.Color("#4B5563")
)

// sleep stages
var (
	ColorStageAwake = lipgloss.Color("#F5F5F4")
	ColorStageREM   = lipgloss.Color("#38BDF8")
	ColorStageLight = lipgloss.Color("#818CF8")
	ColorStageDeep  = lipgloss.Color("#4338CA")
)

var (
	ColorBgDark  = lipgloss.Color("#0E1116")
	ColorBgLight = lipgloss.Color("#262C36")
)
