package content

import (
	"slices"
	"time"
)

// Slots a buy button can be placed in on the public page.
const (
	SlotHeader   = "header"
	SlotHero     = "hero-section"
	SlotResults  = "results-section"
	SlotBenefits = "benefits-section"
	SlotShipping = "shipping-section"
)

// Slots lists every valid buy button location in page order.
var Slots = []string{SlotHeader, SlotHero, SlotResults, SlotBenefits, SlotShipping}

// Document is the single content document edited by the admin and rendered
// by the public page.
type Document struct {
	Metadata             Metadata              `json:"metadata" bson:"metadata"`
	Company              Company               `json:"company" bson:"company"`
	SocialMedia          SocialMedia           `json:"socialMedia" bson:"socialMedia"`
	BuyButtons           []BuyButton           `json:"buyButtons" bson:"buyButtons" validate:"unique=ID,dive"`
	MainHeadings         MainHeadings          `json:"mainHeadings" bson:"mainHeadings"`
	ProductFeatures      []ProductFeature      `json:"productFeatures" bson:"productFeatures" validate:"dive"`
	Testimonials         []Testimonial         `json:"testimonials" bson:"testimonials" validate:"unique=ID,dive"`
	DetailedTestimonials []DetailedTestimonial `json:"detailedTestimonials" bson:"detailedTestimonials" validate:"dive"`
	TargetAudience       []AudienceItem        `json:"targetAudience" bson:"targetAudience" validate:"dive"`
	HowToUse             []HowToUseStep        `json:"howToUse" bson:"howToUse" validate:"dive"`
	FAQ                  []FAQ                 `json:"faq" bson:"faq" validate:"dive"`
	Images               Images                `json:"images" bson:"images"`
	LastUpdated          time.Time             `json:"lastUpdated" bson:"lastUpdated"`
	Version              string                `json:"version" bson:"version"`
}

type Metadata struct {
	Title          string `json:"title" bson:"title" validate:"required,max=60"`
	Description    string `json:"description" bson:"description" validate:"required,max=160"`
	Keywords       string `json:"keywords" bson:"keywords" validate:"required,max=255"`
	Author         string `json:"author" bson:"author" validate:"required,max=100"`
	OGTitle        string `json:"ogTitle" bson:"ogTitle" validate:"required,max=60"`
	OGDescription  string `json:"ogDescription" bson:"ogDescription" validate:"required,max=160"`
	TwitterSite    string `json:"twitterSite,omitempty" bson:"twitterSite,omitempty" validate:"max=50"`
	TwitterCreator string `json:"twitterCreator,omitempty" bson:"twitterCreator,omitempty" validate:"max=50"`
}

type Company struct {
	Name    string `json:"name" bson:"name" validate:"required,max=100"`
	CNPJ    string `json:"cnpj" bson:"cnpj" validate:"required,cnpj"`
	Address string `json:"address" bson:"address" validate:"required,max=255"`
	Email   string `json:"email" bson:"email" validate:"required,email,max=100"`
	Phone   string `json:"phone" bson:"phone" validate:"required,max=20"`
}

type SocialMedia struct {
	Facebook  string `json:"facebook,omitempty" bson:"facebook,omitempty" validate:"omitempty,url"`
	Instagram string `json:"instagram,omitempty" bson:"instagram,omitempty" validate:"omitempty,url"`
	TikTok    string `json:"tiktok,omitempty" bson:"tiktok,omitempty" validate:"omitempty,url"`
}

// BuyButton is a purchase link placed in the page region named by Location.
type BuyButton struct {
	ID       string `json:"id" bson:"id" validate:"required"`
	Text     string `json:"text" bson:"text" validate:"required,max=100" format:"richtext"`
	URL      string `json:"url" bson:"url" validate:"required,url"`
	Location string `json:"location" bson:"location" validate:"required,max=50,oneof=header hero-section results-section benefits-section shipping-section"`
}

// MainHeadings hold trusted inline HTML (<br>, <span>, <b>).
type MainHeadings struct {
	Hero           string `json:"hero" bson:"hero" validate:"required" format:"richtext"`
	WhyChoose      string `json:"whyChoose" bson:"whyChoose" validate:"required" format:"richtext"`
	TargetAudience string `json:"targetAudience" bson:"targetAudience" validate:"required" format:"richtext"`
	HowToUse       string `json:"howToUse" bson:"howToUse" validate:"required" format:"richtext"`
}

type ProductFeature struct {
	Title       string `json:"title" bson:"title" validate:"required,max=200"`
	Description string `json:"description,omitempty" bson:"description,omitempty" validate:"max=500"`
}

type Testimonial struct {
	ID    string `json:"id" bson:"id" validate:"required"`
	Name  string `json:"name" bson:"name" validate:"required,max=50"`
	Quote string `json:"quote" bson:"quote" validate:"required,max=200"`
	Image string `json:"image" bson:"image" validate:"required" format:"image"`
}

type DetailedTestimonial struct {
	Name  string `json:"name" bson:"name" validate:"required,max=50"`
	Quote string `json:"quote" bson:"quote" validate:"required,max=500"`
}

type AudienceItem struct {
	Title       string `json:"title" bson:"title" validate:"required,max=100"`
	Description string `json:"description" bson:"description" validate:"required,max=300"`
}

type HowToUseStep struct {
	Step        string `json:"step" bson:"step" validate:"required,max=20"`
	Instruction string `json:"instruction" bson:"instruction" validate:"required,max=200"`
}

type FAQ struct {
	Question string `json:"question" bson:"question" validate:"required,max=200"`
	Answer   string `json:"answer" bson:"answer" validate:"required,max=500"`
}

// Images holds media URLs, usually returned by the upload endpoint. The
// galleries are optional: an absent list stays nil and is left out of the
// JSON, an explicit [] is kept.
type Images struct {
	Logo          string   `json:"logo" bson:"logo" validate:"required" format:"image"`
	AnvisaSeal    string   `json:"anvisaSeal" bson:"anvisaSeal" validate:"required" format:"image"`
	ProductVideo  string   `json:"productVideo,omitempty" bson:"productVideo,omitempty" format:"video"`
	EfficacyProof []string `json:"efficacyProof,omitzero" bson:"efficacyProof" validate:"omitempty,dive,required" format:"image"`
	BeforeAfter   []string `json:"beforeAfter,omitzero" bson:"beforeAfter" validate:"omitempty,dive,required" format:"image"`
	TrustBadges   []string `json:"trustBadges,omitzero" bson:"trustBadges" validate:"omitempty,dive,required" format:"image"`
}

// ButtonFor returns the first buy button placed in slot, or nil.
func (d *Document) ButtonFor(slot string) *BuyButton {
	if d == nil {
		return nil
	}
	for i := range d.BuyButtons {
		if d.BuyButtons[i].Location == slot {
			return &d.BuyButtons[i]
		}
	}
	return nil
}

// Normalize replaces nil list sections with empty ones so they serialize
// as [] rather than null. Image galleries are left as they are.
func (d *Document) Normalize() {
	if d.BuyButtons == nil {
		d.BuyButtons = []BuyButton{}
	}
	if d.ProductFeatures == nil {
		d.ProductFeatures = []ProductFeature{}
	}
	if d.Testimonials == nil {
		d.Testimonials = []Testimonial{}
	}
	if d.DetailedTestimonials == nil {
		d.DetailedTestimonials = []DetailedTestimonial{}
	}
	if d.TargetAudience == nil {
		d.TargetAudience = []AudienceItem{}
	}
	if d.HowToUse == nil {
		d.HowToUse = []HowToUseStep{}
	}
	if d.FAQ == nil {
		d.FAQ = []FAQ{}
	}
}

// Clone returns a deep copy of d.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	out := *d
	out.BuyButtons = slices.Clone(d.BuyButtons)
	out.ProductFeatures = slices.Clone(d.ProductFeatures)
	out.Testimonials = slices.Clone(d.Testimonials)
	out.DetailedTestimonials = slices.Clone(d.DetailedTestimonials)
	out.TargetAudience = slices.Clone(d.TargetAudience)
	out.HowToUse = slices.Clone(d.HowToUse)
	out.FAQ = slices.Clone(d.FAQ)
	out.Images.EfficacyProof = slices.Clone(d.Images.EfficacyProof)
	out.Images.BeforeAfter = slices.Clone(d.Images.BeforeAfter)
	out.Images.TrustBadges = slices.Clone(d.Images.TrustBadges)
	out.Normalize()
	return &out
}
