// Package templater renders html/template files from disk into strings,
// typically email bodies or static pages.
//
//	tpl := templater.New(
//		templater.WithBaseDir("./templates"),
//		templater.WithCache(true),
//		templater.WithFuncs(template.FuncMap{"upper": strings.ToUpper}),
//	)
//
//	html, err := tpl.Render(ctx, "welcome.html", map[string]any{"Name": "Ada"})
//
// Data is HTML-escaped according to context. A missing file yields
// ErrTemplateNotFound; other read failures yield ErrFailedToRead.
package templater
