package catalog

import (
	"reflect"
	"testing"

	"github.com/HandLine-Safety/handline-catalog-backend/models"
)

func floatPtr(v float64) *float64 { return &v }

func armProduct(lengthCM float64, closure string) models.Product {
	return models.Product{
		Category: "Arm protection",
		Attributes: models.KindAttributes{
			Kind: models.KindArm,
			Arm: &models.ArmAttributes{
				LengthCM: floatPtr(lengthCM),
				Closure:  closure,
			},
		},
	}
}

func TestDeriveOptionsLengthNumericOrder(t *testing.T) {
	products := []models.Product{
		armProduct(45, "velcro"),
		armProduct(30, "snap"),
		armProduct(45, "velcro"), // duplicate length
		armProduct(7.5, "elastic"),
	}

	got := DeriveOptions(products, DimLength, "en")
	want := []string{"7.5 cm", "30 cm", "45 cm"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("length options = %v, want %v", got, want)
	}
}

func TestDeriveOptionsClosureLexicographic(t *testing.T) {
	products := []models.Product{
		armProduct(30, "velcro"),
		armProduct(30, "elastic"),
		armProduct(30, "snap"),
		armProduct(30, ""), // blank values are skipped
	}

	got := DeriveOptions(products, DimClosure, "en")
	want := []string{"elastic", "snap", "velcro"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("closure options = %v, want %v", got, want)
	}
}

func TestDeriveOptionsClosureLocalised(t *testing.T) {
	p := armProduct(30, "velcro")
	p.Attributes.Arm.ClosureLocales = models.LocaleMap{"en": "velcro", "it": "strappo"}

	got := DeriveOptions([]models.Product{p}, DimClosure, "it")
	if len(got) != 1 || got[0] != "strappo" {
		t.Errorf("closure options = %v, want [strappo]", got)
	}
}

func TestDeriveOptionsClothingSizeFixedOrder(t *testing.T) {
	products := []models.Product{
		{Attributes: models.KindAttributes{
			Kind:     models.KindClothing,
			Clothing: &models.ClothingStandards{Sizes: []string{"L", "XS"}},
		}},
		{Attributes: models.KindAttributes{
			Kind:     models.KindClothing,
			Clothing: &models.ClothingStandards{Sizes: []string{"2XL"}},
		}},
	}

	got := DeriveOptions(products, DimClothingSize, "en")
	want := []string{"XS", "L", "2XL"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("clothing sizes = %v, want %v", got, want)
	}
}

func TestDeriveOptionsEmptyDimension(t *testing.T) {
	products := []models.Product{armProduct(30, "velcro")}

	if got := DeriveOptions(products, DimClothingSize, "en"); len(got) != 0 {
		t.Errorf("expected no clothing size options, got %v", got)
	}
	if got := DeriveOptions(nil, DimLength, "en"); len(got) != 0 {
		t.Errorf("expected no options for empty collection, got %v", got)
	}
}

func TestDeriveOptionsStandards(t *testing.T) {
	products := []models.Product{
		{Attributes: models.KindAttributes{
			Kind:  models.KindGlove,
			Glove: &models.GloveRatings{Standards: []string{"EN407", "EN388"}},
		}},
		{Attributes: models.KindAttributes{
			Kind:     models.KindFootwear,
			Footwear: &models.FootwearStandards{Standards: []string{"EN ISO 20345"}},
		}},
	}

	got := DeriveOptions(products, DimStandard, "en")
	want := []string{"EN ISO 20345", "EN388", "EN407"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("standards = %v, want %v", got, want)
	}
}

func TestDeriveAllOptionsOmitsEmptyDimensions(t *testing.T) {
	products := []models.Product{armProduct(45, "velcro")}

	all := DeriveAllOptions(products, "en")
	if _, ok := all[DimLength]; !ok {
		t.Errorf("expected length dimension, got %v", all)
	}
	if _, ok := all[DimClothingSize]; ok {
		t.Errorf("empty clothing size dimension should be omitted, got %v", all)
	}
	if _, ok := all[DimEnvironment]; ok {
		t.Errorf("empty environment dimension should be omitted, got %v", all)
	}
}
