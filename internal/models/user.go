// ABOUTME: User profile model and derived health figures.
// ABOUTME: BMI, Hamwi ideal weight, and Harris-Benedict basal metabolic rate.
package models

import "math"

// Sex is the biological sex used by the body-composition formulas.
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// IsValidSex checks if a string is a valid sex value.
func IsValidSex(s string) bool {
	return s == string(SexMale) || s == string(SexFemale)
}

// UserID is the fixed identity of the single profile row.
const UserID int64 = 1

// User is the single profile stored by the app.
type User struct {
	ID       int64    `json:"id" yaml:"id"`
	Name     string   `json:"name" yaml:"name"`
	Weight   *float64 `json:"weight,omitempty" yaml:"weight,omitempty"` // kg
	Height   *float64 `json:"height,omitempty" yaml:"height,omitempty"` // cm
	Age      *int     `json:"age,omitempty" yaml:"age,omitempty"`
	Sex      *Sex     `json:"sex,omitempty" yaml:"sex,omitempty"`
	ImageURI *string  `json:"image_uri,omitempty" yaml:"image_uri,omitempty"`
}

// NewUser creates a User with just a name set.
func NewUser(name string) *User {
	return &User{ID: UserID, Name: name}
}

// WithWeight sets the body weight in kilograms.
func (u *User) WithWeight(kg float64) *User {
	u.Weight = &kg
	return u
}

// WithHeight sets the height in centimetres.
func (u *User) WithHeight(cm float64) *User {
	u.Height = &cm
	return u
}

// WithAge sets the age in years.
func (u *User) WithAge(years int) *User {
	u.Age = &years
	return u
}

// WithSex sets the sex.
func (u *User) WithSex(s Sex) *User {
	u.Sex = &s
	return u
}

// WithImageURI sets the profile image reference.
func (u *User) WithImageURI(uri string) *User {
	u.ImageURI = &uri
	return u
}

// BMI categories.
const (
	BMIUnderweight = "underweight"
	BMINormal      = "normal"
	BMIOverweight  = "overweight"
	BMIObese       = "obese"
)

// BMI returns weight / height² with height in metres, rounded to one decimal.
func (u *User) BMI() (float64, bool) {
	if u.Weight == nil || u.Height == nil || *u.Weight <= 0 || *u.Height <= 0 {
		return 0, false
	}
	m := *u.Height / 100
	return round1(*u.Weight / (m * m)), true
}

// BMICategory classifies the BMI using the WHO adult thresholds.
func (u *User) BMICategory() (string, bool) {
	bmi, ok := u.BMI()
	if !ok {
		return "", false
	}
	switch {
	case bmi < 18.5:
		return BMIUnderweight, true
	case bmi < 25:
		return BMINormal, true
	case bmi < 30:
		return BMIOverweight, true
	default:
		return BMIObese, true
	}
}

// IdealWeight uses the Hamwi formula. Needs height and sex.
func (u *User) IdealWeight() (float64, bool) {
	if u.Height == nil || u.Sex == nil || *u.Height <= 0 {
		return 0, false
	}
	inchesOver5ft := (*u.Height - 152.4) / 2.54
	switch *u.Sex {
	case SexMale:
		return round1(48.0 + 2.7*inchesOver5ft), true
	case SexFemale:
		return round1(45.5 + 2.2*inchesOver5ft), true
	}
	return 0, false
}

// BasalMetabolicRate uses the original Harris-Benedict equation (kcal/day).
func (u *User) BasalMetabolicRate() (float64, bool) {
	if u.Weight == nil || u.Height == nil || u.Age == nil || u.Sex == nil {
		return 0, false
	}
	w, h, a := *u.Weight, *u.Height, float64(*u.Age)
	switch *u.Sex {
	case SexMale:
		return math.Round(66.5 + 13.75*w + 5.003*h - 6.75*a), true
	case SexFemale:
		return math.Round(655.1 + 9.563*w + 1.850*h - 4.676*a), true
	}
	return 0, false
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
