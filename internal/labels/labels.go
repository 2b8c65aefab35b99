// Package labels loads the static label data the classifier joins its
// predictions against: the ImageNet class index and the two
// comma-separated breed-name lists.
package labels

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Normalize trims a token and collapses its inner whitespace to
// underscores, matching the form ImageNet class descriptions use.
func Normalize(s string) string {
	return strings.Join(strings.Fields(s), "_")
}

// ParseBreedFile reads a comma-separated list of breed names and returns
// the normalized tokens. Empty segments are dropped.
func ParseBreedFile(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read breed list: %w", err)
	}

	var breeds []string
	for _, token := range strings.Split(string(raw), ",") {
		if name := Normalize(token); name != "" {
			breeds = append(breeds, name)
		}
	}
	return breeds, nil
}

// ClassIndex maps model output indices to ImageNet class descriptions.
type ClassIndex struct {
	descriptions []string
}

// LoadClassIndex parses the standard ImageNet class-index JSON, a map of
// stringified indices to [wnid, description] pairs.
func LoadClassIndex(path string) (*ClassIndex, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read class index: %w", err)
	}

	var entries map[string][2]string
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse class index: %w", err)
	}

	descriptions := make([]string, len(entries))
	for key, entry := range entries {
		idx, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("bad class index key %q: %w", key, err)
		}
		if idx < 0 || idx >= len(descriptions) {
			return nil, fmt.Errorf("class index %d out of range for %d classes", idx, len(entries))
		}
		descriptions[idx] = entry[1]
	}

	return &ClassIndex{descriptions: descriptions}, nil
}

// Description returns the class description for a model output index.
func (c *ClassIndex) Description(i int) string {
	if i < 0 || i >= len(c.descriptions) {
		return ""
	}
	return c.descriptions[i]
}

// Descriptions returns all class descriptions in index order.
func (c *ClassIndex) Descriptions() []string {
	return c.descriptions
}

// Len reports the number of classes.
func (c *ClassIndex) Len() int {
	return len(c.descriptions)
}

// Coarse labels assigned by the Tagger.
const (
	TagCat       = "Cat"
	TagDog       = "Dog"
	TagUnlabeled = "unlabeled"
)

// Tagger maps a class description onto a coarse Cat/Dog label by
// membership in the two breed sets.
type Tagger struct {
	cats map[string]struct{}
	dogs map[string]struct{}
}

// NewTagger builds a Tagger from already-normalized breed names.
func NewTagger(catBreeds, dogBreeds []string) *Tagger {
	t := &Tagger{
		cats: make(map[string]struct{}, len(catBreeds)),
		dogs: make(map[string]struct{}, len(dogBreeds)),
	}
	for _, b := range catBreeds {
		t.cats[b] = struct{}{}
	}
	for _, b := range dogBreeds {
		t.dogs[b] = struct{}{}
	}
	return t
}

// Tag returns TagCat or TagDog when the class appears in the matching
// breed list, TagUnlabeled otherwise.
func (t *Tagger) Tag(class string) string {
	name := Normalize(class)
	if _, ok := t.cats[name]; ok {
		return TagCat
	}
	if _, ok := t.dogs[name]; ok {
		return TagDog
	}
	return TagUnlabeled
}
