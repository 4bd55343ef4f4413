package models

import (
	"fmt"
	"strings"
)

// Prayer is one of the five daily prayers.
type Prayer int

const (
	Fajr Prayer = iota + 1
	Dhuhr
	Asr
	Maghrib
	Isha
)

var prayerNames = map[Prayer]string{
	Fajr:    "fajr",
	Dhuhr:   "dhuhr",
	Asr:     "asr",
	Maghrib: "maghrib",
	Isha:    "isha",
}

// Prayers lists all prayers in their daily order.
var Prayers = []Prayer{Fajr, Dhuhr, Asr, Maghrib, Isha}

// ParsePrayer maps a wire name such as "fajr" to its Prayer.
func ParsePrayer(s string) (Prayer, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for p, n := range prayerNames {
		if n == name {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown prayer %q", s)
}

// Valid reports whether p is one of the five prayers.
func (p Prayer) Valid() bool {
	_, ok := prayerNames[p]
	return ok
}

func (p Prayer) String() string {
	if n, ok := prayerNames[p]; ok {
		return n
	}
	return fmt.Sprintf("Prayer(%d)", int(p))
}

// Meal is one of the four tracked meals.
type Meal int

const (
	Breakfast Meal = iota + 1
	Lunch
	Snack
	Dinner
)

var mealNames = map[Meal]string{
	Breakfast: "breakfast",
	Lunch:     "lunch",
	Snack:     "snack",
	Dinner:    "dinner",
}

// Meals lists all meals in their daily order.
var Meals = []Meal{Breakfast, Lunch, Snack, Dinner}

// ParseMeal maps a wire name such as "lunch" to its Meal.
func ParseMeal(s string) (Meal, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for m, n := range mealNames {
		if n == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown meal %q", s)
}

// Valid reports whether m is one of the four meals.
func (m Meal) Valid() bool {
	_, ok := mealNames[m]
	return ok
}

func (m Meal) String() string {
	if n, ok := mealNames[m]; ok {
		return n
	}
	return fmt.Sprintf("Meal(%d)", int(m))
}
