// Package storage stores uploaded images and files on the local filesystem
// and bundles stored files into zip archives.
//
// A Media value is bound to two root directories, one for images and one for
// generic files. Stored names are derived from the declared file name:
//
//	<root>/<subPath>/[<unix-millis>-]<slug(stem)><ext>
//
// The extension is kept from the declared name, or taken from WithExtension
// when the declared name has none. A timestamp prefix is added unless
// WithTimestamp(false) is passed.
//
//	media, err := storage.New(storage.Config{
//		ImagesDir: "/srv/public/img",
//		FilesDir:  "/srv/public/files",
//	})
//
//	path, err := media.StoreImage(ctx, file, "Holiday Photo.JPG", "users/42")
//	// /srv/public/img/users/42/1718000000000-holiday-photo.JPG
//
//	path, err = media.StoreFile(ctx, r, "picture", "2",
//		storage.WithTimestamp(false),
//		storage.WithExtension("png"),
//	)
//	// /srv/public/files/2/picture.png
//
//	zipPath, err := media.CreateArchive(ctx, "export.zip", "exports", []string{a, b}, log)
//
// ResizeImage writes a scaled copy of a stored image next to it:
//
//	thumb, err := media.ResizeImage(ctx, path, 320, "thumb")
//	// /srv/public/img/users/42/1718000000000-holiday-photo-thumb.JPG
//
// Writes stream through a fixed-size buffer, so inputs of any size are
// supported. When the source fails mid-copy the destination is closed before
// the error is returned; the partially written file stays on disk for the
// caller to remove. A single unreadable archive member fails the whole
// archive. Nothing is retried.
//
// Operations share no mutable state and may run concurrently. Callers pick
// distinct sub paths or keep timestamps on to avoid writing the same path
// twice.
//
// An optional Mirror (see integration/storage/s3) receives a copy of every
// stored file and archive and is asked to delete mirrored copies on Remove.
package storage
