// Package slug generates URL and filesystem safe slugs from arbitrary strings.
//
// Input is transliterated (diacritics folded with golang.org/x/text, plus a
// table for letters such as ß, ø and Cyrillic), lowercased, and every run of
// characters other than ASCII letters and digits collapses into one separator.
//
//	slug.Make("Hello, World!")     // "hello-world"
//	slug.Make("Straße in München") // "strasse-in-munchen"
//	slug.Make("Москва")            // "moskva"
//	slug.Make("北京")               // ""
//
// Options adjust the output:
//
//	slug.Make("Product Name", slug.Separator("_"), slug.Lowercase(false)) // "Product_Name"
//	slug.Make("Price: $100.00", slug.StripChars("$:"))                    // "price-100-00"
//	slug.Make("Article Title", slug.MaxLength(20), slug.WithSuffix(6))    // "article-title-k7x2f9"
//	slug.Make("C++ & Go", slug.CustomReplace(map[string]string{"C++": "cpp", "&": "and"}))
//
// Make never fails. Input that contains nothing sluggable returns an empty
// string, or only the suffix when WithSuffix is set.
package slug
