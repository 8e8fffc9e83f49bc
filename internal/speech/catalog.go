package speech

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/tidwall/jsonc"

	"github.com/hammamikhairi/bingoxdraw/internal/domain"
)

// DefaultLanguage is the label selected at startup when it exists in the
// catalog.
const DefaultLanguage = "Português (Portugal)"

// builtinLanguages is used when no catalog file is present.
var builtinLanguages = []domain.VoiceLanguage{
	{Label: "Português (Portugal)", Text: "Número", Voice: "pt-PT-RaquelNeural", Locale: "pt-PT"},
	{Label: "Português (Brasil)", Text: "Número", Voice: "pt-BR-FranciscaNeural", Locale: "pt-BR"},
	{Label: "English (US)", Text: "Number", Voice: "en-US-AvaNeural", Locale: "en-US"},
	{Label: "English (UK)", Text: "Number", Voice: "en-GB-SoniaNeural", Locale: "en-GB"},
	{Label: "Español (España)", Text: "Número", Voice: "es-ES-ElviraNeural", Locale: "es-ES"},
	{Label: "Français (France)", Text: "Numéro", Voice: "fr-FR-DeniseNeural", Locale: "fr-FR"},
}

// Catalog is an immutable lookup table from language label to voice.
// Labels keep the order they were declared in.
type Catalog struct {
	labels []string
	byName map[string]domain.VoiceLanguage
}

// NewCatalog builds a catalog. Entries without a label or voice are
// rejected; a repeated label keeps the last entry.
func NewCatalog(langs []domain.VoiceLanguage) (*Catalog, error) {
	c := &Catalog{byName: make(map[string]domain.VoiceLanguage, len(langs))}
	for _, l := range langs {
		if l.Label == "" || l.Voice == "" {
			return nil, fmt.Errorf("voice entry %q: label and voice are required", l.Label)
		}
		if l.Locale == "" {
			l.Locale = localeFromVoice(l.Voice)
		}
		if _, dup := c.byName[l.Label]; !dup {
			c.labels = append(c.labels, l.Label)
		}
		c.byName[l.Label] = l
	}
	if len(c.labels) == 0 {
		return nil, errors.New("voice catalog is empty")
	}
	return c, nil
}

// BuiltinCatalog returns the catalog compiled into the binary.
func BuiltinCatalog() *Catalog {
	c, _ := NewCatalog(builtinLanguages)
	return c
}

// Labels returns the language labels in declaration order.
func (c *Catalog) Labels() []string { return slices.Clone(c.labels) }

// Len returns the number of languages.
func (c *Catalog) Len() int { return len(c.labels) }

// Lookup finds a language by exact label, then case-insensitively, then by
// 1-based index ("2" selects the second label).
func (c *Catalog) Lookup(label string) (domain.VoiceLanguage, error) {
	label = strings.TrimSpace(label)
	if l, ok := c.byName[label]; ok {
		return l, nil
	}
	for _, name := range c.labels {
		if strings.EqualFold(name, label) {
			return c.byName[name], nil
		}
	}
	if idx, err := strconv.Atoi(label); err == nil && idx >= 1 && idx <= len(c.labels) {
		return c.byName[c.labels[idx-1]], nil
	}
	return domain.VoiceLanguage{}, fmt.Errorf("%w: %q", domain.ErrUnknownVoice, label)
}

// Default returns DefaultLanguage if present, otherwise the first label.
func (c *Catalog) Default() domain.VoiceLanguage {
	if l, ok := c.byName[DefaultLanguage]; ok {
		return l
	}
	return c.byName[c.labels[0]]
}

// catalogEntry is the on-disk shape of one language.
type catalogEntry struct {
	Label  string `json:"label"`
	Text   string `json:"text"`
	Voice  string `json:"voice"`
	Locale string `json:"locale"`
}

// ParseCatalog decodes a JSONC voice catalog. Two shapes are accepted:
//
//	{"English (US)": {"text": "Number", "voice": "en-US-AvaNeural"}, ...}
//	[{"label": "English (US)", "text": "Number", "voice": "en-US-AvaNeural"}, ...]
//
// Object keys are unordered in Go maps, so the object form keeps the key
// order from the source document.
func ParseCatalog(data []byte) (*Catalog, error) {
	stripped := bytes.TrimSpace(jsonc.ToJSON(data))
	if len(stripped) == 0 {
		return nil, errors.New("voice catalog is empty")
	}

	var entries []catalogEntry
	switch stripped[0] {
	case '[':
		if err := json.Unmarshal(stripped, &entries); err != nil {
			return nil, fmt.Errorf("parsing voice catalog: %w", err)
		}
	case '{':
		var err error
		if entries, err = decodeOrderedObject(stripped); err != nil {
			return nil, fmt.Errorf("parsing voice catalog: %w", err)
		}
	default:
		return nil, errors.New("parsing voice catalog: expected object or array")
	}

	langs := make([]domain.VoiceLanguage, len(entries))
	for i, e := range entries {
		langs[i] = domain.VoiceLanguage{Label: e.Label, Text: e.Text, Voice: e.Voice, Locale: e.Locale}
	}
	return NewCatalog(langs)
}

func decodeOrderedObject(data []byte) ([]catalogEntry, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	if _, err := dec.Token(); err != nil { // opening brace
		return nil, err
	}
	var entries []catalogEntry
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		label, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected key %v", tok)
		}
		var e catalogEntry
		if err := dec.Decode(&e); err != nil {
			return nil, fmt.Errorf("entry %q: %w", label, err)
		}
		e.Label = label
		entries = append(entries, e)
	}
	return entries, nil
}

// LoadCatalog reads the catalog at path. A missing file yields the
// built-in catalog and fromFile=false; a malformed file is an error.
func LoadCatalog(path string) (c *Catalog, fromFile bool, err error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return BuiltinCatalog(), false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading %s: %w", path, err)
	}
	c, err = ParseCatalog(data)
	if err != nil {
		return nil, false, fmt.Errorf("%s: %w", path, err)
	}
	return c, true, nil
}
