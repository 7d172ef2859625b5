package domain

import (
	"unicode"
	"unicode/utf8"
)

// Category is the presentation enum. Stored habits keep their category as a
// free string; unknown values render as CategoryOther.
type Category string

const (
	CategoryHealth       Category = "health"
	CategoryFitness      Category = "fitness"
	CategoryProductivity Category = "productivity"
	CategoryLearning     Category = "learning"
	CategoryMindfulness  Category = "mindfulness"
	CategoryOther        Category = "other"

	DefaultCategory = CategoryHealth
)

var Categories = []Category{
	CategoryHealth,
	CategoryFitness,
	CategoryProductivity,
	CategoryLearning,
	CategoryMindfulness,
	CategoryOther,
}

var categoryIcons = map[Category]string{
	CategoryHealth:       "heart",
	CategoryFitness:      "activity",
	CategoryProductivity: "zap",
	CategoryLearning:     "book",
	CategoryMindfulness:  "brain",
	CategoryOther:        "more-horizontal",
}

func PresentationCategory(raw string) Category {
	c := Category(raw)
	if _, ok := categoryIcons[c]; ok {
		return c
	}
	return CategoryOther
}

func (c Category) Icon() string {
	return categoryIcons[PresentationCategory(string(c))]
}

func (c Category) Label() string {
	return CategoryLabel(string(c))
}

// CategoryLabel capitalises the literal value, so "reading" becomes "Reading"
// even though its icon is the fallback one.
func CategoryLabel(raw string) string {
	r, size := utf8.DecodeRuneInString(raw)
	if size == 0 {
		return ""
	}
	return string(unicode.ToUpper(r)) + raw[size:]
}
