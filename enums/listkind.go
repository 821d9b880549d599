package enums

type ListKind string

const (
	ListKindInvalid ListKind = ""

	// ListKindNG holds the watch-terms flagged as abusive keywords.
	ListKindNG ListKind = "ng"

	// ListKindWhite holds accounts or terms excluded from review.
	ListKindWhite ListKind = "white"

	// ListKindWatch holds the term sets the background monitor runs with.
	ListKindWatch ListKind = "watch"

	// ListKindPreset holds saved search configurations.
	ListKindPreset ListKind = "preset"
)

func ParseListKind(s string) ListKind {
	switch ListKind(s) {
	case ListKindNG, ListKindWhite, ListKindWatch, ListKindPreset:
		return ListKind(s)
	}
	return ListKindInvalid
}
