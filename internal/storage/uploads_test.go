package storage_test

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/creative-hut/backend/internal/storage"
)

// fileHeader builds a multipart.FileHeader the way an incoming request would.
func fileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	fw, err := w.CreateFormFile("image", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if err := req.ParseMultipartForm(1 << 20); err != nil {
		t.Fatalf("parse multipart: %v", err)
	}
	return req.MultipartForm.File["image"][0]
}

func TestUploads(t *testing.T) {
	Convey("Given an uploads directory that does not exist yet", t, func() {
		dir := filepath.Join(t.TempDir(), "uploads")
		u := storage.New(dir)

		Convey("When saving a file", func() {
			path, err := u.Save(fileHeader(t, "logo.png", []byte("first")))

			Convey("Then the directory is created and the file is stored under its original name", func() {
				So(err, ShouldBeNil)
				So(path, ShouldEndWith, "logo.png")
				So(u.Exists("logo.png"), ShouldBeTrue)

				raw, readErr := os.ReadFile(u.Path("logo.png"))
				So(readErr, ShouldBeNil)
				So(string(raw), ShouldEqual, "first")
			})

			Convey("And saving another file with the same name", func() {
				_, err := u.Save(fileHeader(t, "logo.png", []byte("second")))

				Convey("Then the last writer wins", func() {
					So(err, ShouldBeNil)
					raw, readErr := os.ReadFile(u.Path("logo.png"))
					So(readErr, ShouldBeNil)
					So(string(raw), ShouldEqual, "second")
				})
			})
		})

		Convey("When the client filename carries directory components", func() {
			path, err := u.Save(fileHeader(t, "../../evil.png", []byte("x")))

			Convey("Then only the base name is used", func() {
				So(err, ShouldBeNil)
				So(path, ShouldEndWith, "evil.png")
				So(u.Exists("evil.png"), ShouldBeTrue)
			})
		})

		Convey("When checking a file that was never stored", func() {
			Convey("Then it does not exist", func() {
				So(u.Exists("missing.png"), ShouldBeFalse)
			})
		})
	})
}
