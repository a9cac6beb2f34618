// Package templates is the pure factory producing seed funnel graphs
// from a template name. Every template is deterministic, hand-authored
// data: fixed ids, positions and configs, a single linear chain of
// default connections, plus branch edges where a yes/no step gates the
// flow. Applying a template replaces the current graph wholesale.
package templates

import "github.com/insyncinternational/funnelflow/pkg/domain"

const introVideoURL = "https://res.cloudinary.com/domnocrwi/video/upload/v1752741407/intro.mp4"

// Info describes a template for catalogs.
type Info struct {
	Name        string `json:"name"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

var catalog = []Info{
	{"dating", "💕 Dating (Matchify)", "Premium dating platform onboarding with age gate and payment"},
	{"ecommerce", "🛒 E-commerce", "Product demo to checkout"},
	{"saas", "💻 SaaS", "Demo, qualification and trial booking"},
	{"coaching", "🎯 Coaching", "Goal assessment and session booking"},
	{"real-estate", "🏠 Real Estate", "Property tour with viewing scheduler"},
	{"fitness", "💪 Fitness", "Fitness assessment and membership plans"},
	{"education", "🎓 Education", "Course preview and trial class booking"},
}

// Catalog returns the available templates in presentation order.
func Catalog() []Info {
	out := make([]Info, len(catalog))
	copy(out, catalog)
	return out
}

// Names returns the known template names.
func Names() []string {
	names := make([]string, len(catalog))
	for i, info := range catalog {
		names[i] = info.Name
	}
	return names
}

// Load produces the steps and connections for a named template. Unknown
// names fall back to the dating template, mirroring the product's
// historical default. Each call returns a fresh graph.
func Load(name string) ([]domain.Step, []domain.Connection) {
	switch name {
	case "dating", "matchify":
		return dating()
	case "ecommerce":
		return ecommerce()
	case "saas":
		return saas()
	case "coaching":
		return coaching()
	case "real-estate", "realestate":
		return realEstate()
	case "fitness":
		return fitness()
	case "education":
		return education()
	default:
		return dating()
	}
}

// Seed returns the default funnel a brand-new ID starts from: the
// three-step video/question/form chain with a no-branch to the terminal.
func Seed(id string) *domain.Funnel {
	steps, conns := NewBuilder().
		Step("step-1", domain.StepVideo, "Welcome Video", 100, 100, map[string]any{
			"videoUrl": introVideoURL,
			"question": "Welcome to our platform!",
			"options": []any{
				map[string]any{"label": "Get Started", "next": "step-2"},
			},
		}).
		Step("step-2", domain.StepQuestion, "Age Verification", 400, 100, map[string]any{
			"question": "Are you over 18 years old?",
			"options": []any{
				map[string]any{"label": "Yes", "next": "step-3"},
				map[string]any{"label": "No", "next": domain.EndStepID},
			},
		}).
		Step("step-3", domain.StepForm, "Lead Capture", 700, 100, map[string]any{
			"fields": []any{
				map[string]any{"name": "name", "type": "text", "label": "Full Name", "required": true},
				map[string]any{"name": "email", "type": "email", "label": "Email", "required": true},
			},
		}).
		Connect("step-1", "step-2", "default").
		Connect("step-2", "step-3", "yes").
		Connect("step-2", domain.EndStepID, "no").
		Build()

	f := &domain.Funnel{
		ID:          id,
		Name:        "My Funnel",
		Description: "Build your conversion funnel",
		Status:      domain.StatusDraft,
		Steps:       steps,
		Connections: conns,
	}
	f.Normalize()
	return f
}

// Fallback returns the minimal one-step funnel used when a persisted
// record is absent or malformed: the builder must stay interactive even
// when its data is gone.
func Fallback(id string) *domain.Funnel {
	steps, conns := NewBuilder().
		Step("step-1", domain.StepVideo, "Welcome Video", 100, 100, map[string]any{
			"videoUrl": introVideoURL,
		}).
		Build()

	f := &domain.Funnel{
		ID:          id,
		Name:        "My Funnel",
		Description: "Build your conversion funnel",
		Status:      domain.StatusDraft,
		Steps:       steps,
		Connections: conns,
	}
	f.Normalize()
	return f
}

func dating() ([]domain.Step, []domain.Connection) {
	return NewBuilder().
		Step("step-1", domain.StepVideo, "Welcome Video", 150, 150, map[string]any{
			"videoUrl": introVideoURL,
			"question": "Welcome to our exclusive dating platform! Are you ready to find your perfect match?",
		}).
		Step("step-2", domain.StepQuestion, "Age Verification", 500, 150, map[string]any{
			"question": "Are you over 18 years old?",
			"options": []any{
				map[string]any{"label": "Yes", "next": "step-3"},
				map[string]any{"label": "No", "next": domain.EndStepID},
			},
		}).
		Step("step-3", domain.StepForm, "Profile Setup", 850, 150, map[string]any{
			"fields": []any{
				map[string]any{"name": "name", "type": "text", "label": "Full Name", "required": true},
				map[string]any{"name": "email", "type": "email", "label": "Email Address", "required": true},
				map[string]any{"name": "age", "type": "number", "label": "Age", "required": true},
				map[string]any{"name": "location", "type": "text", "label": "City", "required": true},
			},
		}).
		Step("step-4", domain.StepQuestion, "Dating Preferences", 1200, 150, map[string]any{
			"question": "What type of relationship are you looking for?",
			"options": []any{
				map[string]any{"label": "Serious Relationship", "next": "step-5"},
				map[string]any{"label": "Casual Dating", "next": "step-5"},
				map[string]any{"label": "Friendship", "next": "step-5"},
			},
		}).
		Step("step-5", domain.StepPricing, "Premium Membership", 150, 500, map[string]any{
			"plans": []any{
				map[string]any{"name": "Basic", "price": "$9.99", "features": []any{"5 matches/day", "Basic filters"}},
				map[string]any{"name": "Premium", "price": "$19.99", "features": []any{"Unlimited matches", "Advanced filters", "Priority support"}},
			},
		}).
		Step("step-6", domain.StepQuestion, "Payment Method", 500, 500, map[string]any{
			"question": "How would you like to pay?",
			"options": []any{
				map[string]any{"label": "Credit Card", "next": "step-7"},
				map[string]any{"label": "PayPal", "next": "step-7"},
				map[string]any{"label": "Bank Transfer", "next": "step-7"},
			},
		}).
		Step("step-7", domain.StepForm, "Payment Details", 850, 500, map[string]any{
			"fields": []any{
				map[string]any{"name": "cardNumber", "type": "text", "label": "Card Number", "required": true},
				map[string]any{"name": "expiryDate", "type": "text", "label": "Expiry Date", "required": true},
				map[string]any{"name": "cvv", "type": "text", "label": "CVV", "required": true},
				map[string]any{"name": "billingAddress", "type": "text", "label": "Billing Address", "required": true},
			},
		}).
		Step("step-8", domain.StepUpload, "Profile Photo", 1200, 500, map[string]any{
			"accept":   "image/*",
			"maxSize":  "5MB",
			"multiple": false,
		}).
		Step("step-9", domain.StepQuestion, "Interests & Hobbies", 150, 850, map[string]any{
			"question": "What are your main interests?",
			"options": []any{
				map[string]any{"label": "Sports & Fitness", "next": "step-10"},
				map[string]any{"label": "Music & Arts", "next": "step-10"},
				map[string]any{"label": "Travel & Adventure", "next": "step-10"},
				map[string]any{"label": "Technology", "next": "step-10"},
			},
		}).
		Step("step-10", domain.StepQuiz, "Personality Quiz", 500, 850, map[string]any{
			"questions": []any{
				map[string]any{
					"question": "How do you prefer to spend your weekends?",
					"options":  []any{"Outdoor activities", "Reading at home", "Social events", "Creative projects"},
				},
				map[string]any{
					"question": "What motivates you most?",
					"options":  []any{"Achievement", "Relationships", "Learning", "Helping others"},
				},
			},
		}).
		Step("step-11", domain.StepSocial, "Social Proof", 850, 850, map[string]any{
			"testimonials": []any{
				map[string]any{"name": "Sarah M.", "text": "Found my soulmate in just 2 weeks!", "rating": 5},
				map[string]any{"name": "Mike D.", "text": "Amazing platform, highly recommend!", "rating": 5},
			},
			"stats": map[string]any{"users": "50,000+", "matches": "1M+", "success": "95%"},
		}).
		Step("step-12", domain.StepTimer, "Limited Time Offer", 1200, 850, map[string]any{
			"duration": 300,
			"message":  "Special discount expires in:",
			"discount": "50% OFF",
		}).
		Step("step-13", domain.StepRedirect, "Success Page", 150, 1400, map[string]any{
			"redirectUrl": "https://matchify.com/welcome",
			"message":     "Welcome to Matchify! Your account has been created successfully. Start browsing matches now!",
		}).
		Connect("step-1", "step-2", "default").
		Connect("step-2", "step-3", "yes").
		Connect("step-2", domain.EndStepID, "no").
		Chain("step-3", "step-4", "step-5", "step-6", "step-7", "step-8", "step-9", "step-10", "step-11", "step-12", "step-13").
		Build()
}

func ecommerce() ([]domain.Step, []domain.Connection) {
	return NewBuilder().
		Step("step-1", domain.StepVideo, "Product Demo", 150, 150, map[string]any{
			"videoUrl": introVideoURL,
			"question": "Discover our amazing products! Watch this quick demo to see what we offer.",
		}).
		Step("step-2", domain.StepQuestion, "Product Interest", 500, 150, map[string]any{
			"question": "Which product interests you most?",
			"options": []any{
				map[string]any{"label": "Premium Collection", "next": "step-3"},
				map[string]any{"label": "Basic Collection", "next": "step-3"},
				map[string]any{"label": "Limited Edition", "next": "step-3"},
			},
		}).
		Step("step-3", domain.StepForm, "Customer Info", 850, 150, map[string]any{
			"fields": []any{
				map[string]any{"name": "name", "type": "text", "label": "Full Name", "required": true},
				map[string]any{"name": "email", "type": "email", "label": "Email Address", "required": true},
				map[string]any{"name": "phone", "type": "tel", "label": "Phone Number", "required": true},
			},
		}).
		Step("step-4", domain.StepPricing, "Product Pricing", 1200, 150, map[string]any{
			"plans": []any{
				map[string]any{"name": "Basic", "price": "$29.99", "features": []any{"1 Product", "Standard Shipping"}},
				map[string]any{"name": "Premium", "price": "$59.99", "features": []any{"3 Products", "Free Shipping", "Gift Wrap"}},
			},
		}).
		Step("step-5", domain.StepForm, "Shipping Details", 150, 500, map[string]any{
			"fields": []any{
				map[string]any{"name": "address", "type": "text", "label": "Shipping Address", "required": true},
				map[string]any{"name": "city", "type": "text", "label": "City", "required": true},
				map[string]any{"name": "zipcode", "type": "text", "label": "ZIP Code", "required": true},
			},
		}).
		Step("step-6", domain.StepPayment, "Payment", 500, 500, map[string]any{
			"amount":   "$59.99",
			"currency": "USD",
		}).
		Step("step-7", domain.StepRedirect, "Order Confirmation", 850, 500, map[string]any{
			"redirectUrl": "https://store.com/order-confirmation",
			"message":     "Thank you for your order! You will receive a confirmation email shortly.",
		}).
		Chain("step-1", "step-2", "step-3", "step-4", "step-5", "step-6", "step-7").
		Build()
}

func saas() ([]domain.Step, []domain.Connection) {
	return NewBuilder().
		Step("step-1", domain.StepVideo, "Product Demo", 150, 150, map[string]any{
			"videoUrl": introVideoURL,
			"question": "See how our SaaS platform can transform your business in just 2 minutes!",
		}).
		Step("step-2", domain.StepQuestion, "Business Size", 500, 150, map[string]any{
			"question": "How many employees does your company have?",
			"options": []any{
				map[string]any{"label": "1-10 employees", "next": "step-3"},
				map[string]any{"label": "11-50 employees", "next": "step-3"},
				map[string]any{"label": "50+ employees", "next": "step-3"},
			},
		}).
		Step("step-3", domain.StepForm, "Company Info", 850, 150, map[string]any{
			"fields": []any{
				map[string]any{"name": "company", "type": "text", "label": "Company Name", "required": true},
				map[string]any{"name": "email", "type": "email", "label": "Work Email", "required": true},
				map[string]any{"name": "role", "type": "text", "label": "Your Role", "required": true},
			},
		}).
		Step("step-4", domain.StepPricing, "Pricing Plans", 1200, 150, map[string]any{
			"plans": []any{
				map[string]any{"name": "Starter", "price": "$29/month", "features": []any{"5 Users", "Basic Features", "Email Support"}},
				map[string]any{"name": "Professional", "price": "$99/month", "features": []any{"25 Users", "Advanced Features", "Priority Support"}},
				map[string]any{"name": "Enterprise", "price": "$299/month", "features": []any{"Unlimited Users", "All Features", "Dedicated Support"}},
			},
		}).
		Step("step-5", domain.StepCalendar, "Schedule Demo", 150, 500, map[string]any{
			"title":    "Book a Demo Call",
			"duration": 30,
		}).
		Step("step-6", domain.StepRedirect, "Demo Scheduled", 500, 500, map[string]any{
			"redirectUrl": "https://saas.com/demo-scheduled",
			"message":     "Your demo has been scheduled! We will send you a calendar invite shortly.",
		}).
		Chain("step-1", "step-2", "step-3", "step-4", "step-5", "step-6").
		Build()
}

func coaching() ([]domain.Step, []domain.Connection) {
	return NewBuilder().
		Step("step-1", domain.StepVideo, "Coach Introduction", 150, 150, map[string]any{
			"videoUrl": introVideoURL,
			"question": "Hi! I'm your coach. Let me show you how I can help you achieve your goals.",
		}).
		Step("step-2", domain.StepQuiz, "Goal Assessment", 500, 150, map[string]any{
			"questions": []any{
				map[string]any{
					"question": "What is your primary goal?",
					"options":  []any{"Career Growth", "Health & Fitness", "Relationships", "Financial Freedom"},
				},
				map[string]any{
					"question": "How committed are you to change?",
					"options":  []any{"Very Committed", "Somewhat Committed", "Just Exploring", "Not Sure"},
				},
			},
		}).
		Step("step-3", domain.StepForm, "Personal Info", 850, 150, map[string]any{
			"fields": []any{
				map[string]any{"name": "name", "type": "text", "label": "Full Name", "required": true},
				map[string]any{"name": "email", "type": "email", "label": "Email Address", "required": true},
				map[string]any{"name": "age", "type": "number", "label": "Age", "required": true},
				map[string]any{"name": "goals", "type": "text", "label": "Specific Goals", "required": true},
			},
		}).
		Step("step-4", domain.StepPricing, "Coaching Packages", 1200, 150, map[string]any{
			"plans": []any{
				map[string]any{"name": "1-on-1 Session", "price": "$150", "features": []any{"60 min session", "Personalized plan"}},
				map[string]any{"name": "Monthly Package", "price": "$500", "features": []any{"4 sessions", "Email support", "Resources"}},
				map[string]any{"name": "3-Month Program", "price": "$1200", "features": []any{"12 sessions", "Unlimited support", "Group access"}},
			},
		}).
		Step("step-5", domain.StepCalendar, "Book Session", 150, 500, map[string]any{
			"title":    "Schedule Your Coaching Session",
			"duration": 60,
		}).
		Step("step-6", domain.StepRedirect, "Session Booked", 500, 500, map[string]any{
			"redirectUrl": "https://coaching.com/session-booked",
			"message":     "Your coaching session has been booked! Check your email for details.",
		}).
		Chain("step-1", "step-2", "step-3", "step-4", "step-5", "step-6").
		Build()
}

func realEstate() ([]domain.Step, []domain.Connection) {
	return NewBuilder().
		Step("step-1", domain.StepVideo, "Property Tour", 150, 150, map[string]any{
			"videoUrl": introVideoURL,
			"question": "Take a virtual tour of this stunning property! See what makes it special.",
		}).
		Step("step-2", domain.StepQuestion, "Property Interest", 500, 150, map[string]any{
			"question": "Are you interested in this property?",
			"options": []any{
				map[string]any{"label": "Yes, I want to see it", "next": "step-3"},
				map[string]any{"label": "Maybe, need more info", "next": "step-3"},
				map[string]any{"label": "Not interested", "next": domain.EndStepID},
			},
		}).
		Step("step-3", domain.StepForm, "Contact Info", 850, 150, map[string]any{
			"fields": []any{
				map[string]any{"name": "name", "type": "text", "label": "Full Name", "required": true},
				map[string]any{"name": "email", "type": "email", "label": "Email Address", "required": true},
				map[string]any{"name": "phone", "type": "tel", "label": "Phone Number", "required": true},
				map[string]any{"name": "budget", "type": "text", "label": "Budget Range", "required": true},
			},
		}).
		Step("step-4", domain.StepCalendar, "Schedule Viewing", 1200, 150, map[string]any{
			"title":    "Schedule Property Viewing",
			"duration": 60,
		}).
		Step("step-5", domain.StepLocation, "Property Location", 150, 500, map[string]any{
			"prompt": "Allow location access to show nearby amenities and services",
		}).
		Step("step-6", domain.StepRedirect, "Viewing Scheduled", 500, 500, map[string]any{
			"redirectUrl": "https://realestate.com/viewing-scheduled",
			"message":     "Your property viewing has been scheduled! We will contact you to confirm.",
		}).
		Connect("step-1", "step-2", "default").
		Connect("step-2", "step-3", "yes").
		Connect("step-2", domain.EndStepID, "no").
		Chain("step-3", "step-4", "step-5", "step-6").
		Build()
}

func fitness() ([]domain.Step, []domain.Connection) {
	return NewBuilder().
		Step("step-1", domain.StepVideo, "Workout Preview", 150, 150, map[string]any{
			"videoUrl": introVideoURL,
			"question": "See how our fitness program can transform your body in just 30 days!",
		}).
		Step("step-2", domain.StepQuiz, "Fitness Assessment", 500, 150, map[string]any{
			"questions": []any{
				map[string]any{
					"question": "What is your fitness level?",
					"options":  []any{"Beginner", "Intermediate", "Advanced", "Expert"},
				},
				map[string]any{
					"question": "What are your main goals?",
					"options":  []any{"Weight Loss", "Muscle Gain", "Endurance", "General Fitness"},
				},
			},
		}).
		Step("step-3", domain.StepForm, "Health Info", 850, 150, map[string]any{
			"fields": []any{
				map[string]any{"name": "name", "type": "text", "label": "Full Name", "required": true},
				map[string]any{"name": "email", "type": "email", "label": "Email Address", "required": true},
				map[string]any{"name": "age", "type": "number", "label": "Age", "required": true},
				map[string]any{"name": "weight", "type": "number", "label": "Current Weight", "required": true},
				map[string]any{"name": "goals", "type": "text", "label": "Fitness Goals", "required": true},
			},
		}).
		Step("step-4", domain.StepPricing, "Membership Plans", 1200, 150, map[string]any{
			"plans": []any{
				map[string]any{"name": "Basic", "price": "$29/month", "features": []any{"Workout Videos", "Basic Nutrition"}},
				map[string]any{"name": "Premium", "price": "$49/month", "features": []any{"Personal Trainer", "Meal Plans", "Progress Tracking"}},
				map[string]any{"name": "Elite", "price": "$99/month", "features": []any{"1-on-1 Coaching", "Custom Plans", "24/7 Support"}},
			},
		}).
		Step("step-5", domain.StepCalendar, "Free Consultation", 150, 500, map[string]any{
			"title":    "Book Free Fitness Consultation",
			"duration": 30,
		}).
		Step("step-6", domain.StepRedirect, "Consultation Booked", 500, 500, map[string]any{
			"redirectUrl": "https://fitness.com/consultation-booked",
			"message":     "Your free consultation has been booked! Get ready to start your fitness journey.",
		}).
		Chain("step-1", "step-2", "step-3", "step-4", "step-5", "step-6").
		Build()
}

func education() ([]domain.Step, []domain.Connection) {
	return NewBuilder().
		Step("step-1", domain.StepVideo, "Course Preview", 150, 150, map[string]any{
			"videoUrl": introVideoURL,
			"question": "Watch this preview to see what you'll learn in our comprehensive course!",
		}).
		Step("step-2", domain.StepQuestion, "Learning Goals", 500, 150, map[string]any{
			"question": "What do you want to achieve with this course?",
			"options": []any{
				map[string]any{"label": "Career Advancement", "next": "step-3"},
				map[string]any{"label": "Personal Development", "next": "step-3"},
				map[string]any{"label": "Skill Building", "next": "step-3"},
			},
		}).
		Step("step-3", domain.StepForm, "Student Info", 850, 150, map[string]any{
			"fields": []any{
				map[string]any{"name": "name", "type": "text", "label": "Full Name", "required": true},
				map[string]any{"name": "email", "type": "email", "label": "Email Address", "required": true},
				map[string]any{"name": "education", "type": "text", "label": "Education Level", "required": true},
				map[string]any{"name": "experience", "type": "text", "label": "Relevant Experience", "required": true},
			},
		}).
		Step("step-4", domain.StepPricing, "Course Pricing", 1200, 150, map[string]any{
			"plans": []any{
				map[string]any{"name": "Basic", "price": "$99", "features": []any{"Course Access", "Certificate"}},
				map[string]any{"name": "Premium", "price": "$199", "features": []any{"Course Access", "Live Sessions", "Mentorship"}},
				map[string]any{"name": "Master", "price": "$399", "features": []any{"Everything", "1-on-1 Coaching", "Job Placement"}},
			},
		}).
		Step("step-5", domain.StepCalendar, "Free Trial Class", 150, 500, map[string]any{
			"title":    "Book Free Trial Class",
			"duration": 60,
		}).
		Step("step-6", domain.StepRedirect, "Trial Booked", 500, 500, map[string]any{
			"redirectUrl": "https://education.com/trial-booked",
			"message":     "Your free trial class has been booked! Welcome to your learning journey.",
		}).
		Chain("step-1", "step-2", "step-3", "step-4", "step-5", "step-6").
		Build()
}
