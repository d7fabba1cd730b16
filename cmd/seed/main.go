// Package main provides a tool to generate a seed dataset for the
// journal.
//
// It writes a seed.json that trailbook consumes on first run, with a
// handful of sample travel stories so a fresh journal is not empty.
//
// Usage:
//
//	go run ./cmd/seed --out ~/Trailbook/data/seed.json
//	go run ./cmd/seed --count 12
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/trailbookapp/trailbook/internal/domain"
	"github.com/trailbookapp/trailbook/internal/id"
)

var (
	outPath = flag.String("out", "seed.json", "Where to write the seed dataset")
	count   = flag.Int("count", 6, "How many sample stories to generate")
)

// sample is one template the generator draws from.
type sample struct {
	title    string
	body     string
	mood     string
	location string
	tags     []string
}

var samples = []sample{
	{
		title:    "Sunrise over the Dolomites",
		body:     "We left the rifugio at five and watched the Tre Cime turn pink. Cold hands, hot coffee from the thermos, and not another soul on the trail.",
		mood:     "adventurous",
		location: "Dolomites",
		tags:     []string{"mountain", "hike", "sunrise"},
	},
	{
		title:    "Tiles and trams in Lisbon",
		body:     "Spent the whole morning riding the 28 tram end to end. The azulejos on every corner make the city feel like a museum you can live in.",
		mood:     "curious",
		location: "Lisbon",
		tags:     []string{"city", "history", "art"},
	},
	{
		title:    "Night market in Taipei",
		body:     "Stinky tofu smells exactly as advertised and tastes ten times better. We ate our way from one end of Raohe to the other for pocket change.",
		mood:     "joyful",
		location: "Taipei",
		tags:     []string{"street food", "market", "nightlife"},
	},
	{
		title:    "Rain day in Bergen",
		body:     "It rained sideways all day, so we hid in the fish market and played cards. Sometimes the best travel days are the ones where nothing goes to plan.",
		mood:     "relaxed",
		location: "Bergen",
		tags:     []string{"rain", "food"},
	},
	{
		title:    "Ferry to the island",
		body:     "Two hours on the deck watching the mainland shrink. The island has one shop, one chapel, and the clearest water I have ever seen.",
		mood:     "peaceful",
		location: "Cyclades",
		tags:     []string{"island", "beach", "nature"},
	},
	{
		title:    "First solo flight",
		body:     "Landed in a country where I know nobody and cannot read the signs. Terrified and thrilled in equal measure. The airport coffee helped.",
		mood:     "excited",
		location: "Seoul",
		tags:     []string{"solo", "flight", "airport"},
	},
	{
		title:    "Temple run in Kyoto",
		body:     "Started at Fushimi Inari before dawn to beat the crowds. A thousand gates and a stray cat that followed us half the way up.",
		mood:     "grateful",
		location: "Kyoto",
		tags:     []string{"temple", "sunrise", "nature"},
	},
	{
		title:    "Desert night sky",
		body:     "No light for a hundred kilometers in any direction. We lay on the dunes until midnight naming constellations, mostly wrong.",
		mood:     "nostalgic",
		location: "Sahara",
		tags:     []string{"desert", "nature"},
	},
}

// seedFile matches the shape trailbook reads at bootstrap.
type seedFile struct {
	Stories   []domain.Story     `json:"stories"`
	Prefs     domain.Preferences `json:"prefs"`
	Bookmarks []string           `json:"bookmarks"`
}

func main() {
	flag.Parse()

	n := *count
	if n < 1 {
		n = 1
	}
	if n > len(samples) {
		n = len(samples)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	picks := rng.Perm(len(samples))[:n]

	// Space the stories out over the past weeks, oldest last, so the
	// seeded timeline reads newest-first like a real journal
	now := time.Now().UTC()
	stories := make([]domain.Story, 0, n)
	for i, pick := range picks {
		s := samples[pick]
		created := now.AddDate(0, 0, -(i*4 + rng.Intn(3)))

		mood := s.mood
		location := s.location
		stories = append(stories, domain.Story{
			ID:            id.MustGenerate("story"),
			Title:         s.title,
			Body:          s.body,
			Mood:          &mood,
			Location:      &location,
			Visibility:    domain.VisibilityPrivate,
			AllowComments: true,
			AllowLikes:    true,
			IsAnonymous:   true,
			Tags:          s.tags,
			Images:        []string{},
			Comments:      []domain.Comment{},
			CreatedAt:     created,
			UpdatedAt:     created,
		})
	}

	seed := seedFile{
		Stories:   stories,
		Prefs:     domain.DefaultPreferences(),
		Bookmarks: []string{},
	}

	data, err := json.MarshalIndent(seed, "", "  ")
	if err != nil {
		log.Fatalf("Failed to marshal seed data: %v", err)
	}

	if dir := filepath.Dir(*outPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatalf("Failed to create output directory: %v", err)
		}
	}
	if err := os.WriteFile(*outPath, data, 0644); err != nil {
		log.Fatalf("Failed to write seed file: %v", err)
	}

	fmt.Printf("Wrote %d stories to %s\n", len(stories), *outPath)
}
