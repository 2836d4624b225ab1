package pdf

// Table is one extracted table: ordered rows of optionally-empty cell
// strings, with the page it was found on (1-based).
type Table struct {
	Page int        `json:"page"`
	Rows [][]string `json:"rows"`
}

// Document holds everything the field extractor needs for one PDF. RawText
// is the page-ordered text as extracted; Text is the same content with all
// whitespace runs collapsed to single spaces.
type Document struct {
	FileName string
	Path     string
	Pages    int
	RawText  string
	Text     string
	Tables   []Table
}
