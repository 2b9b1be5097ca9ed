package genres

import "strings"

// Choices lists the genre tags offered on the create/edit forms.
var Choices = []string{
	"Alternative",
	"Blues",
	"Classical",
	"Country",
	"Electronic",
	"Folk",
	"Funk",
	"Hip-Hop",
	"Heavy Metal",
	"Instrumental",
	"Jazz",
	"Musical Theatre",
	"Pop",
	"Punk",
	"R&B",
	"Reggae",
	"Rock n Roll",
	"Soul",
	"Other",
}

// Join flattens a multi-select genre list into the single text column carried
// on venue and artist records. Order is preserved; blank entries are dropped.
func Join(list []string) string {
	var clean []string
	for _, g := range list {
		if trimmed := strings.TrimSpace(g); trimmed != "" {
			clean = append(clean, trimmed)
		}
	}
	return strings.Join(clean, ",")
}

// Split restores the ordered genre list from its stored form. An empty column
// yields an empty, non-nil slice so responses render [] rather than null.
func Split(s string) []string {
	result := []string{}
	for _, g := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(g); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
