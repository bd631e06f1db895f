package util

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/afero"
	"github.com/subplay/subplay/filesystem"
)

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "cue", "cues"), ShouldEqual, "1 cue")
		So(Quantify(2, "cue", "cues"), ShouldEqual, "2 cues")
		So(Quantify(0, "cue", "cues"), ShouldEqual, "0 cues")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("history file"), ShouldEqual, "History file")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestFileStem(t *testing.T) {
	Convey("FileStem", t, func() {
		So(FileStem("path/to/movie.mkv"), ShouldEqual, "movie")
		So(FileStem("movie.en.srt"), ShouldEqual, "movie.en")
		So(FileStem("movie"), ShouldEqual, "movie")
	})
}

func TestDelete(t *testing.T) {
	Convey("Given an in-memory filesystem", t, func() {
		filesystem.SetMemMapFs()
		fs := filesystem.API()

		So(fs.MkdirAll("/cache/nested", 0o755), ShouldBeNil)
		So(afero.WriteFile(fs, "/cache/nested/history.json", []byte("{}"), 0o644), ShouldBeNil)
		So(afero.WriteFile(fs, "/log.txt", []byte("x"), 0o644), ShouldBeNil)

		Convey("Directories are removed recursively", func() {
			So(Delete("/cache"), ShouldBeNil)
			exists, _ := afero.Exists(fs, "/cache/nested/history.json")
			So(exists, ShouldBeFalse)
		})

		Convey("Files are removed", func() {
			So(Delete("/log.txt"), ShouldBeNil)
			exists, _ := afero.Exists(fs, "/log.txt")
			So(exists, ShouldBeFalse)
		})

		Convey("Missing paths fail", func() {
			So(Delete("/nope"), ShouldNotBeNil)
		})
	})
}
