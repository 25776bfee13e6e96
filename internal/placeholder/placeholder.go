// Package placeholder produces realistic filler values for seed data and for
// fields the caller left out on create.
package placeholder

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

var firstNames = []string{
	"Ana", "Carlos", "Lucia", "Miguel", "Sofia", "Diego", "Valentina", "Javier",
	"Camila", "Andres", "Elena", "Pablo",
}

var lastNames = []string{
	"Garcia", "Rodriguez", "Martinez", "Lopez", "Hernandez", "Gonzalez",
	"Perez", "Sanchez", "Ramirez", "Torres",
}

var words = []string{
	"premium", "quality", "durable", "modern", "classic", "compact", "wireless",
	"ergonomic", "lightweight", "portable", "design", "performance", "comfort",
	"style", "value", "reliable", "versatile", "essential",
}

var adjectives = []string{
	"Sleek", "Rustic", "Incredible", "Handmade", "Refined", "Practical",
	"Intelligent", "Ergonomic", "Awesome", "Gorgeous",
}

var materials = []string{
	"Steel", "Wooden", "Cotton", "Granite", "Rubber", "Leather", "Plastic",
	"Bronze",
}

var nouns = []string{
	"Chair", "Keyboard", "Shirt", "Table", "Lamp", "Shoes", "Watch", "Bottle",
	"Backpack", "Speaker",
}

var catchPhrases = []string{
	"Innovation you can trust",
	"Quality in every detail",
	"Built for the long run",
	"Designed around you",
	"Where performance meets style",
	"Simply better products",
}

var countries = []string{
	"United States", "Germany", "Japan", "South Korea", "France", "Italy",
	"Spain", "Sweden", "Canada", "Netherlands",
}

var emailDomains = []string{"example.com", "mail.test", "inbox.dev"}

func pick(list []string) string {
	return list[rand.Intn(len(list))]
}

// FullName returns a random "First Last" name.
func FullName() string {
	return pick(firstNames) + " " + pick(lastNames)
}

// Username derives a handle like "ana.garcia42".
func Username() string {
	return fmt.Sprintf("%s.%s%d",
		strings.ToLower(pick(firstNames)), strings.ToLower(pick(lastNames)), rand.Intn(100))
}

func Password() string {
	return fmt.Sprintf("pw-%08x", rand.Uint32())
}

func Email() string {
	return fmt.Sprintf("%s.%s%d@%s",
		strings.ToLower(pick(firstNames)), strings.ToLower(pick(lastNames)), rand.Intn(1000), pick(emailDomains))
}

// Sentence returns a short capitalized sentence.
func Sentence() string {
	n := 5 + rand.Intn(4)
	parts := make([]string, n)
	for i := range parts {
		parts[i] = pick(words)
	}
	s := strings.Join(parts, " ")
	return strings.ToUpper(s[:1]) + s[1:] + "."
}

// Paragraph returns a few sentences.
func Paragraph() string {
	parts := make([]string, 3)
	for i := range parts {
		parts[i] = Sentence()
	}
	return strings.Join(parts, " ")
}

// ProductName returns names like "Sleek Wooden Chair".
func ProductName() string {
	return pick(adjectives) + " " + pick(materials) + " " + pick(nouns)
}

func CatchPhrase() string {
	return pick(catchPhrases)
}

func Country() string {
	return pick(countries)
}

func ImageURL(width, height int, tag string) string {
	return fmt.Sprintf("https://loremflickr.com/%d/%d/%s", width, height, tag)
}

// Price returns a two-decimal price between 1.00 and 1000.99.
func Price() float64 {
	return float64(100+rand.Intn(100000)) / 100
}

// Stock returns a stock level between 0 and 100.
func Stock() int {
	return rand.Intn(101)
}

// Bool returns a coin flip.
func Bool() bool {
	return rand.Intn(2) == 0
}

// PastDate returns a timestamp up to a year in the past.
func PastDate() time.Time {
	return time.Now().Add(-time.Duration(rand.Intn(365*24)) * time.Hour)
}
