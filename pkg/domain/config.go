package domain

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Step configs are persisted as free-form maps (the record format carries
// whatever the properties panel wrote), but each step kind recognizes a
// fixed set of options. The typed variants below are what the rest of the
// system works with; DecodeConfig is the single place raw maps become
// typed values, so adding a kind is a compile-checked change.

// OptionRef is a labeled choice pointing at the next step (or EndStepID).
type OptionRef struct {
	Label string `mapstructure:"label" json:"label"`
	Next  string `mapstructure:"next" json:"next"`
}

// FormField describes one input of a form step.
type FormField struct {
	Name     string `mapstructure:"name" json:"name"`
	Type     string `mapstructure:"type" json:"type"`
	Label    string `mapstructure:"label" json:"label"`
	Required bool   `mapstructure:"required" json:"required"`
}

// PricingPlan describes one plan of a pricing step.
type PricingPlan struct {
	Name     string   `mapstructure:"name" json:"name"`
	Price    string   `mapstructure:"price" json:"price"`
	Features []string `mapstructure:"features" json:"features"`
}

// Testimonial is one entry of a social-proof step.
type Testimonial struct {
	Name   string `mapstructure:"name" json:"name"`
	Text   string `mapstructure:"text" json:"text"`
	Rating int    `mapstructure:"rating" json:"rating"`
}

// QuizQuestion is one entry of a quiz or survey step.
type QuizQuestion struct {
	Question string   `mapstructure:"question" json:"question"`
	Options  []string `mapstructure:"options" json:"options"`
}

type VideoConfig struct {
	VideoURL string      `mapstructure:"videoUrl" json:"videoUrl"`
	Question string      `mapstructure:"question" json:"question"`
	Options  []OptionRef `mapstructure:"options" json:"options"`
}

type QuestionConfig struct {
	Question string      `mapstructure:"question" json:"question"`
	Options  []OptionRef `mapstructure:"options" json:"options"`
}

type FormConfig struct {
	Fields []FormField `mapstructure:"fields" json:"fields"`
}

type PricingConfig struct {
	Plans []PricingPlan `mapstructure:"plans" json:"plans"`
}

type RedirectConfig struct {
	RedirectURL string `mapstructure:"redirectUrl" json:"redirectUrl"`
	Message     string `mapstructure:"message" json:"message"`
}

type TimerConfig struct {
	Duration int    `mapstructure:"duration" json:"duration"` // seconds
	Message  string `mapstructure:"message" json:"message"`
	Discount string `mapstructure:"discount" json:"discount"`
}

type SocialConfig struct {
	Testimonials []Testimonial     `mapstructure:"testimonials" json:"testimonials"`
	Stats        map[string]string `mapstructure:"stats" json:"stats"`
}

type QuizConfig struct {
	Questions []QuizQuestion `mapstructure:"questions" json:"questions"`
}

type CalendarConfig struct {
	Title    string `mapstructure:"title" json:"title"`
	Duration int    `mapstructure:"duration" json:"duration"` // minutes
}

type UploadConfig struct {
	Accept   string `mapstructure:"accept" json:"accept"`
	MaxSize  string `mapstructure:"maxSize" json:"maxSize"`
	Multiple bool   `mapstructure:"multiple" json:"multiple"`
}

type SurveyConfig struct {
	Questions []QuizQuestion `mapstructure:"questions" json:"questions"`
}

type ChatConfig struct {
	Greeting string `mapstructure:"greeting" json:"greeting"`
}

type EmailConfig struct {
	Prompt      string `mapstructure:"prompt" json:"prompt"`
	Placeholder string `mapstructure:"placeholder" json:"placeholder"`
}

type PhoneConfig struct {
	Prompt string `mapstructure:"prompt" json:"prompt"`
}

type LocationConfig struct {
	Prompt string `mapstructure:"prompt" json:"prompt"`
}

type PaymentConfig struct {
	Amount   string `mapstructure:"amount" json:"amount"`
	Currency string `mapstructure:"currency" json:"currency"`
}

type WaitlistConfig struct {
	Message string `mapstructure:"message" json:"message"`
}

type DownloadConfig struct {
	FileURL  string `mapstructure:"fileUrl" json:"fileUrl"`
	FileName string `mapstructure:"fileName" json:"fileName"`
}

type GalleryConfig struct {
	Images []string `mapstructure:"images" json:"images"`
}

type MapConfig struct {
	Address string `mapstructure:"address" json:"address"`
	Prompt  string `mapstructure:"prompt" json:"prompt"`
}

// NormalizeConfig ensures a step config is a usable map. Nil in, empty
// map out; it never returns nil.
func NormalizeConfig(raw map[string]any) map[string]any {
	if raw == nil {
		return map[string]any{}
	}
	return raw
}

// DecodeConfig converts a raw config map into the typed variant for the
// given step kind. Unknown keys are ignored (the panel may write extras);
// type mismatches surface as an error so callers can fall back to the
// zero variant without dropping the raw map from the record.
func DecodeConfig(t StepType, raw map[string]any) (any, error) {
	raw = NormalizeConfig(raw)

	decode := func(out any) (any, error) {
		dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Result:           out,
			WeaklyTypedInput: true,
		})
		if err != nil {
			return nil, err
		}
		if err := dec.Decode(raw); err != nil {
			return nil, fmt.Errorf("failed to decode %s config: %w", t, err)
		}
		return out, nil
	}

	switch t {
	case StepVideo:
		return decode(&VideoConfig{})
	case StepQuestion:
		return decode(&QuestionConfig{})
	case StepForm:
		return decode(&FormConfig{})
	case StepPricing:
		return decode(&PricingConfig{})
	case StepRedirect:
		return decode(&RedirectConfig{})
	case StepTimer:
		return decode(&TimerConfig{})
	case StepSocial:
		return decode(&SocialConfig{})
	case StepQuiz:
		return decode(&QuizConfig{})
	case StepCalendar:
		return decode(&CalendarConfig{})
	case StepUpload:
		return decode(&UploadConfig{})
	case StepSurvey:
		return decode(&SurveyConfig{})
	case StepChat:
		return decode(&ChatConfig{})
	case StepEmail:
		return decode(&EmailConfig{})
	case StepPhone:
		return decode(&PhoneConfig{})
	case StepLocation:
		return decode(&LocationConfig{})
	case StepPayment:
		return decode(&PaymentConfig{})
	case StepWaitlist:
		return decode(&WaitlistConfig{})
	case StepDownload:
		return decode(&DownloadConfig{})
	case StepGallery:
		return decode(&GalleryConfig{})
	case StepMap:
		return decode(&MapConfig{})
	default:
		return nil, fmt.Errorf("unknown step type %q", t)
	}
}
