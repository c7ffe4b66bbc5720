// Package cache provides a generic, concurrency-safe LRU cache.
//
//	c := cache.NewLRUCache[string, *template.Template](128)
//	c.SetEvictCallback(func(key string, _ *template.Template) {
//		log.Debug("template evicted", "path", key)
//	})
//
//	c.Put("welcome.html", tmpl)
//	if t, ok := c.Get("welcome.html"); ok {
//		// ...
//	}
//
// The templater package uses it to bound the number of parsed templates
// kept in memory.
package cache
