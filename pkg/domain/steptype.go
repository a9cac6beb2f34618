package domain

import "strings"

// StepType identifies the kind of a funnel step. The set is closed: every
// kind the builder understands is declared here, and config decoding
// switches exhaustively over it.
type StepType string

const (
	StepVideo    StepType = "video"
	StepQuestion StepType = "question"
	StepForm     StepType = "form"
	StepPricing  StepType = "pricing"
	StepRedirect StepType = "redirect"
	StepTimer    StepType = "timer"
	StepSocial   StepType = "social"
	StepQuiz     StepType = "quiz"
	StepCalendar StepType = "calendar"
	StepUpload   StepType = "upload"
	StepSurvey   StepType = "survey"
	StepChat     StepType = "chat"
	StepEmail    StepType = "email"
	StepPhone    StepType = "phone"
	StepLocation StepType = "location"
	StepPayment  StepType = "payment"
	StepWaitlist StepType = "waitlist"
	StepDownload StepType = "download"
	StepGallery  StepType = "gallery"
	StepMap      StepType = "map"
)

// TypeInfo describes a step kind for catalogs (sidebar, CLI, API).
type TypeInfo struct {
	Type        StepType `json:"type"`
	Name        string   `json:"name"`
	Icon        string   `json:"icon"`
	Description string   `json:"description"`
}

// catalog is ordered the way the builder sidebar presents step kinds.
var catalog = []TypeInfo{
	{StepVideo, "Video Step", "🎬", "Add a video with questions"},
	{StepQuestion, "Question Step", "❓", "Ask a single question"},
	{StepForm, "Form Step", "📝", "Collect user information"},
	{StepPricing, "Pricing Step", "💰", "Show pricing plans"},
	{StepRedirect, "Redirect Step", "🔗", "Redirect to external URL"},
	{StepTimer, "Timer Step", "⏰", "Countdown timer with urgency"},
	{StepSocial, "Social Proof", "👥", "Show testimonials and reviews"},
	{StepQuiz, "Quiz Step", "🧠", "Interactive quiz with scoring"},
	{StepCalendar, "Calendar Step", "📅", "Date/time picker for scheduling"},
	{StepUpload, "File Upload", "📤", "Allow users to upload files"},
	{StepSurvey, "Survey Step", "📊", "Multi-question survey"},
	{StepChat, "Live Chat", "💬", "Live chat integration"},
	{StepEmail, "Email Capture", "📧", "Email subscription form"},
	{StepPhone, "Phone Capture", "📞", "Phone number collection"},
	{StepLocation, "Location Step", "📍", "Get user location"},
	{StepPayment, "Payment Step", "💳", "Direct payment processing"},
	{StepWaitlist, "Waitlist Step", "⏳", "Join waitlist for early access"},
	{StepDownload, "Download Step", "⬇️", "File download with lead capture"},
	{StepGallery, "Image Gallery", "🖼️", "Showcase images or products"},
	{StepMap, "Map Step", "🗺️", "Interactive map with locations"},
}

// Types returns the full step-kind catalog in presentation order.
func Types() []TypeInfo {
	out := make([]TypeInfo, len(catalog))
	copy(out, catalog)
	return out
}

// Info returns the catalog entry for t, or false if t is not a known kind.
func (t StepType) Info() (TypeInfo, bool) {
	for _, info := range catalog {
		if info.Type == t {
			return info, true
		}
	}
	return TypeInfo{}, false
}

// Valid reports whether t is one of the declared step kinds.
func (t StepType) Valid() bool {
	_, ok := t.Info()
	return ok
}

// DefaultTitle derives the initial title for a freshly added step,
// e.g. "video" -> "Video Step".
func (t StepType) DefaultTitle() string {
	s := string(t)
	if s == "" {
		return "Step"
	}
	return strings.ToUpper(s[:1]) + s[1:] + " Step"
}
