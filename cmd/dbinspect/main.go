package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/trailbookapp/trailbook/internal/domain"
)

// dbinspect opens the journal database read-only and prints a summary
// of the persisted state. Useful for debugging a data directory without
// going through the CLI.
func main() {
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = os.ExpandEnv("$HOME/Trailbook/data/journal")
	}

	opts := badger.DefaultOptions(dbPath).
		WithReadOnly(true).
		WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	fmt.Println("=== Journal Inspection ===")
	fmt.Println()

	if err := db.View(func(txn *badger.Txn) error {
		inspectState(txn)
		inspectBookmarks(txn)
		inspectSession(txn)
		inspectDrafts(txn)
		return nil
	}); err != nil {
		log.Fatalf("Inspection failed: %v", err)
	}
}

func readKey(txn *badger.Txn, key string, out any) bool {
	item, err := txn.Get([]byte(key))
	if err != nil {
		return false
	}
	if err := item.Value(func(val []byte) error {
		return json.Unmarshal(val, out)
	}); err != nil {
		fmt.Printf("  %s: unreadable (%v)\n", key, err)
		return false
	}
	return true
}

func inspectState(txn *badger.Txn) {
	var state struct {
		Stories []domain.Story     `json:"stories"`
		Prefs   domain.Preferences `json:"prefs"`
	}
	if !readKey(txn, "state:v2", &state) {
		fmt.Println("No state record found (empty journal)")
		fmt.Println()
		return
	}

	byVisibility := map[domain.Visibility]int{}
	totalComments := 0
	totalLikes := 0
	tags := map[string]struct{}{}
	for _, s := range state.Stories {
		byVisibility[s.Visibility]++
		totalComments += len(s.Comments)
		totalLikes += s.Likes
		for _, t := range s.Tags {
			tags[t] = struct{}{}
		}
	}

	fmt.Printf("Stories: %d\n", len(state.Stories))
	for _, v := range []domain.Visibility{domain.VisibilityPrivate, domain.VisibilityFriends, domain.VisibilityPublic} {
		if byVisibility[v] > 0 {
			fmt.Printf("  %s: %d\n", v, byVisibility[v])
		}
	}
	fmt.Printf("  comments: %d, likes: %d, distinct tags: %d\n", totalComments, totalLikes, len(tags))

	for i, s := range state.Stories {
		if i >= 5 {
			fmt.Printf("  ... and %d more stories\n", len(state.Stories)-5)
			break
		}
		title := s.Title
		if title == "" {
			title = "(untitled)"
		}
		fmt.Printf("  [%s] %s (%s, %s)\n", s.ID, title, s.Visibility, s.CreatedAt.Format("2006-01-02"))
	}

	fmt.Println()
	fmt.Printf("Preferences: visibility=%s theme=%s displayName=%q\n",
		state.Prefs.DefaultVisibility, state.Prefs.Theme, state.Prefs.DisplayName)
	fmt.Println()
}

func inspectBookmarks(txn *badger.Txn) {
	var bookmarks domain.Bookmarks
	if readKey(txn, "bookmarks:v2", &bookmarks) && len(bookmarks) > 0 {
		fmt.Printf("Bookmarks: %d (%s)\n", len(bookmarks), strings.Join(bookmarks, ", "))
	} else {
		fmt.Println("Bookmarks: none")
	}
	fmt.Println()
}

func inspectSession(txn *badger.Txn) {
	var session domain.Session
	if readKey(txn, "session:v1", &session) && session.Email != "" {
		fmt.Printf("Session: %s (%q)\n", session.Email, session.DisplayName)
	} else {
		fmt.Println("Session: none")
	}
	fmt.Println()
}

func inspectDrafts(txn *badger.Txn) {
	iterOpts := badger.DefaultIteratorOptions
	iterOpts.PrefetchValues = false

	it := txn.NewIterator(iterOpts)
	defer it.Close()

	drafts := 0
	banners := 0
	for it.Rewind(); it.Valid(); it.Next() {
		key := string(it.Item().Key())
		switch {
		case strings.HasPrefix(key, "draft:"):
			drafts++
			fmt.Printf("Draft key: %s\n", key)
		case strings.HasPrefix(key, "banner:dismissed:"):
			banners++
		}
	}
	if drafts == 0 {
		fmt.Println("Drafts: none")
	}
	fmt.Printf("Dismissed banners: %d\n", banners)
}
