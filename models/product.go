package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ═══════════════════════════════════════════════════════════
// JSONB Type Definitions
// ═══════════════════════════════════════════════════════════

// LocaleMap holds per-locale display variants of a single string field,
// keyed by locale code ("en", "it"). The canonical column is kept alongside
// so consumers can fall back when a translation is missing.
type LocaleMap map[string]string

// LocaleListMap holds per-locale variants of a list-valued field
// (features, applications, industries). A locale's list is used wholesale;
// lists are never merged across locales.
type LocaleListMap map[string][]string

// ImageRef is one product image. Order distinguishes the up-to-four
// additional images from the overflow gallery.
type ImageRef struct {
	URL   string `json:"url"`
	Alt   string `json:"alt,omitempty"`
	Order *int   `json:"order,omitempty"`
}

type ImageList []ImageRef

// ═══════════════════════════════════════════════════════════
// Category-specific attribute bags (tagged union)
// ═══════════════════════════════════════════════════════════

// Attribute kind discriminators. Exactly one variant of KindAttributes is
// non-nil and Kind names which.
const (
	KindGlove       = "glove"
	KindArm         = "arm"
	KindClothing    = "clothing"
	KindEyeFace     = "eye_face"
	KindFootwear    = "footwear"
	KindHearing     = "hearing"
	KindEnvironment = "environment"
)

// GloveRatings carries the EN safety ratings printed on the glove back.
type GloveRatings struct {
	EN388     string   `json:"en388,omitempty"` // e.g. "4X43F"
	EN407     string   `json:"en407,omitempty"` // e.g. "41XX4X"
	CutLevel  string   `json:"cut_level,omitempty"`
	HeatLevel string   `json:"heat_level,omitempty"`
	Standards []string `json:"standards,omitempty"`
}

// ArmAttributes describes arm-protection sleeves.
type ArmAttributes struct {
	LengthCM       *float64  `json:"length_cm,omitempty"`
	Closure        string    `json:"closure,omitempty"`
	ClosureLocales LocaleMap `json:"closure_locales,omitempty"`
	ThumbLoop      *bool     `json:"thumb_loop,omitempty"`
	Standards      []string  `json:"standards,omitempty"`
}

type ClothingStandards struct {
	Sizes     []string `json:"sizes,omitempty"` // XS … 8XL
	Standards []string `json:"standards,omitempty"`
}

type EyeFaceStandards struct {
	LensMarking string   `json:"lens_marking,omitempty"`
	Standards   []string `json:"standards,omitempty"`
}

type FootwearStandards struct {
	SafetyClass string   `json:"safety_class,omitempty"` // S1P, S3, …
	Standards   []string `json:"standards,omitempty"`
}

type HearingStandards struct {
	SNRDecibels *float64 `json:"snr_db,omitempty"`
	Standards   []string `json:"standards,omitempty"`
}

// EnvironmentPictograms are the suitability flags shown as pictograms
// on swab and barrier products.
type EnvironmentPictograms struct {
	Oil      bool `json:"oil,omitempty"`
	Wet      bool `json:"wet,omitempty"`
	Dry      bool `json:"dry,omitempty"`
	Chemical bool `json:"chemical,omitempty"`
	Heat     bool `json:"heat,omitempty"`
	Cold     bool `json:"cold,omitempty"`
}

// KindAttributes is the category-specific attribute bag, stored as one
// JSONB column. Kind selects the variant; exactly one pointer is non-nil.
type KindAttributes struct {
	Kind        string                 `json:"kind,omitempty"`
	Glove       *GloveRatings          `json:"glove,omitempty"`
	Arm         *ArmAttributes         `json:"arm,omitempty"`
	Clothing    *ClothingStandards     `json:"clothing,omitempty"`
	EyeFace     *EyeFaceStandards      `json:"eye_face,omitempty"`
	Footwear    *FootwearStandards     `json:"footwear,omitempty"`
	Hearing     *HearingStandards      `json:"hearing,omitempty"`
	Environment *EnvironmentPictograms `json:"environment,omitempty"`
}

// Standards returns the EN standard codes of whichever variant is set.
func (k KindAttributes) Standards() []string {
	switch {
	case k.Glove != nil:
		return k.Glove.Standards
	case k.Arm != nil:
		return k.Arm.Standards
	case k.Clothing != nil:
		return k.Clothing.Standards
	case k.EyeFace != nil:
		return k.EyeFace.Standards
	case k.Footwear != nil:
		return k.Footwear.Standards
	case k.Hearing != nil:
		return k.Hearing.Standards
	}
	return nil
}

// ═══════════════════════════════════════════════════════════
// Main Product Model (GORM)
// ═══════════════════════════════════════════════════════════

type Product struct {
	ID   uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name string    `json:"name" gorm:"not null;index"`
	Slug string    `json:"slug" gorm:"not null;uniqueIndex"`

	// Canonical values plus per-locale display variants
	Category           string    `json:"category" gorm:"not null;index"`
	CategoryLocales    LocaleMap `json:"category_locales" gorm:"type:jsonb;not null;default:'{}'"`
	SubCategory        string    `json:"sub_category"`
	SubCategoryLocales LocaleMap `json:"sub_category_locales" gorm:"type:jsonb;not null;default:'{}'"`

	ShortDescription        string    `json:"short_description"`
	ShortDescriptionLocales LocaleMap `json:"short_description_locales" gorm:"type:jsonb;not null;default:'{}'"`

	// Physical fields with per-locale display strings
	LengthCM      *float64  `json:"length_cm,omitempty"`
	LengthDisplay LocaleMap `json:"length_display" gorm:"type:jsonb;not null;default:'{}'"`
	Size          string    `json:"size,omitempty"`
	SizeLocales   LocaleMap `json:"size_locales" gorm:"type:jsonb;not null;default:'{}'"`

	Material       string    `json:"material,omitempty"`
	MaterialLocale LocaleMap `json:"material_locales" gorm:"type:jsonb;not null;default:'{}'"`

	// Free-text list fields, one list per locale
	Features     LocaleListMap `json:"features" gorm:"type:jsonb;not null;default:'{}'"`
	Applications LocaleListMap `json:"applications" gorm:"type:jsonb;not null;default:'{}'"`
	Industries   LocaleListMap `json:"industries" gorm:"type:jsonb;not null;default:'{}'"`

	Attributes KindAttributes `json:"attributes" gorm:"type:jsonb;not null;default:'{}'"`

	ImageURL         string    `json:"image_url"`
	AdditionalImages ImageList `json:"additional_images" gorm:"type:jsonb;not null;default:'[]'"` // up to four
	GalleryImages    ImageList `json:"gallery_images" gorm:"type:jsonb;not null;default:'[]'"`    // overflow

	Published bool      `json:"published" gorm:"not null;default:false;index"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// ═══════════════════════════════════════════════════════════
// Response Models
// ═══════════════════════════════════════════════════════════

// StorefrontProduct is the thin shape returned by the filtered listing.
type StorefrontProduct struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Category    string    `json:"category"`
	SubCategory string    `json:"sub_category,omitempty"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
}

// CategoryStatsResponse is the published-count-by-category summary.
type CategoryStatsResponse struct {
	TotalPublished int            `json:"total_published"`
	Counts         map[string]int `json:"counts"`
	Unclassified   int            `json:"unclassified"`
}

// ═══════════════════════════════════════════════════════════
// JSONB Scanner/Valuer for GORM (Custom types)
// ═══════════════════════════════════════════════════════════

// scanJSONB accepts both []byte (postgres) and string (sqlite test driver).
func scanJSONB(dest any, value any) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	}
	return errors.New("failed to scan JSONB column")
}

// LocaleMap methods
func (m *LocaleMap) Scan(value interface{}) error {
	*m = make(LocaleMap)
	return scanJSONB(m, value)
}

func (m LocaleMap) Value() (driver.Value, error) {
	if m == nil {
		return json.Marshal(map[string]string{})
	}
	return json.Marshal(m)
}

// LocaleListMap methods
func (m *LocaleListMap) Scan(value interface{}) error {
	*m = make(LocaleListMap)
	return scanJSONB(m, value)
}

func (m LocaleListMap) Value() (driver.Value, error) {
	if m == nil {
		return json.Marshal(map[string][]string{})
	}
	return json.Marshal(m)
}

// ImageList methods
func (l *ImageList) Scan(value interface{}) error {
	*l = make(ImageList, 0)
	return scanJSONB(l, value)
}

func (l ImageList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]ImageRef{})
	}
	return json.Marshal(l)
}

// KindAttributes methods
func (k *KindAttributes) Scan(value interface{}) error {
	*k = KindAttributes{}
	return scanJSONB(k, value)
}

func (k KindAttributes) Value() (driver.Value, error) {
	return json.Marshal(k)
}
