// Package category defines the fixed classification rules mapping file
// extensions to destination categories.
//
// The table is process-constant: it is built once on first use and cannot
// be extended at runtime. Extensions are matched lowercased with their
// leading dot; anything without a rule falls into Others.
package category

import "sync"

// Category names a destination directory for classified files.
type Category string

const (
	Documents Category = "Documents"
	Images    Category = "Images"
	Videos    Category = "Videos"
	Archives  Category = "Archives"
	Code      Category = "Code"
	Others    Category = "Others"
)

// All returns every category in display order. Others is always last.
func All() []Category {
	return []Category{Documents, Images, Videos, Archives, Code, Others}
}

// extensions lists the rules per category. Others has no rules; it catches
// everything the table misses.
var extensions = map[Category][]string{
	Documents: {
		".pdf", ".doc", ".docx", ".txt", ".rtf", ".odt",
		".xlsx", ".xls", ".pptx", ".ppt", ".csv",
	},
	Images: {
		".jpg", ".jpeg", ".png", ".gif", ".bmp", ".svg",
		".webp", ".ico", ".tiff", ".tif", ".raw",
	},
	Videos: {
		".mp4", ".mkv", ".avi", ".mov", ".wmv", ".flv",
		".webm", ".mpeg", ".mpg", ".3gp", ".m4v",
	},
	Archives: {
		".zip", ".rar", ".7z", ".tar", ".gz", ".bz2",
		// .tar.gz is unreachable: extension extraction only yields the
		// final suffix, so x.tar.gz matches the .gz rule instead.
		".xz", ".tgz", ".tar.gz", ".iso",
	},
	Code: {
		".cpp", ".c", ".h", ".hpp", ".py", ".java",
		".js", ".ts", ".jsx", ".tsx", ".html", ".css",
		".scss", ".php", ".rb", ".go", ".rs", ".swift",
		".sh", ".bat", ".json", ".xml", ".yaml", ".yml",
	},
}

var (
	tableOnce sync.Once
	table     map[string]Category
)

// extensionTable builds the flat extension lookup on first use.
func extensionTable() map[string]Category {
	tableOnce.Do(func() {
		table = make(map[string]Category)
		for cat, exts := range extensions {
			for _, ext := range exts {
				table[ext] = cat
			}
		}
	})
	return table
}

// Lookup returns the category assigned to a lowercased extension and
// whether a rule exists for it.
func Lookup(ext string) (Category, bool) {
	cat, ok := extensionTable()[ext]
	return cat, ok
}

// FromExtension returns the category for a lowercased extension, falling
// back to Others when no rule matches. An empty extension always maps
// to Others.
func FromExtension(ext string) Category {
	if cat, ok := Lookup(ext); ok {
		return cat
	}
	return Others
}
