package subtitle

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/subplay/subplay/filesystem"
)

const srt = `1
00:00:01,000 --> 00:00:02,500
Hello
world

2
00:00:03,000 --> 00:00:04,000
Bye
`

const vtt = `WEBVTT

00:00:01.000 --> 00:00:02.000
Hi there
`

func write(path, content string) {
	So(filesystem.API().WriteFile(path, []byte(content), 0o644), ShouldBeNil)
}

func TestResolve(t *testing.T) {
	Convey("Given media in an in-memory filesystem", t, func() {
		filesystem.SetMemMapFs()
		loader := &Loader{Extensions: []string{"vtt", "srt"}}
		write("/media/movie.mkv", "")

		Convey("Nothing resolves without siblings", func() {
			_, ok := loader.Resolve("/media/movie.mkv")
			So(ok, ShouldBeFalse)
		})

		Convey("A single sibling resolves", func() {
			write("/media/movie.vtt", vtt)
			path, ok := loader.Resolve("/media/movie.mkv")
			So(ok, ShouldBeTrue)
			So(path, ShouldEqual, "/media/movie.vtt")
		})

		Convey("The last existing extension wins", func() {
			write("/media/movie.vtt", vtt)
			write("/media/movie.srt", srt)
			path, _ := loader.Resolve("/media/movie.mkv")
			So(path, ShouldEqual, "/media/movie.srt")
		})

		Convey("The media file never resolves to itself", func() {
			write("/media/clip.srt", srt)
			_, ok := loader.Resolve("/media/clip.srt")
			So(ok, ShouldBeFalse)
		})
	})
}

func TestLoad(t *testing.T) {
	Convey("Given subtitle files", t, func() {
		filesystem.SetMemMapFs()
		loader := &Loader{Extensions: []string{"vtt", "srt"}}

		Convey("SRT cues keep order, times and line breaks", func() {
			write("/media/movie.srt", srt)
			cues, err := loader.Load("/media/movie.srt")
			So(err, ShouldBeNil)
			So(cues, ShouldHaveLength, 2)
			So(cues[0].ID, ShouldEqual, 0)
			So(cues[0].StartTime, ShouldEqual, 1)
			So(cues[0].EndTime, ShouldEqual, 2.5)
			So(cues[0].Text, ShouldEqual, "Hello\nworld")
			So(cues[1].ID, ShouldEqual, 1)
			So(cues[1].Text, ShouldEqual, "Bye")
		})

		Convey("WebVTT is parsed", func() {
			write("/media/movie.vtt", vtt)
			cues, err := loader.Load("/media/movie.vtt")
			So(err, ShouldBeNil)
			So(cues, ShouldHaveLength, 1)
			So(cues[0].Text, ShouldEqual, "Hi there")
		})

		Convey("A missing file yields nothing", func() {
			cues, err := loader.Load("/media/none.srt")
			So(err, ShouldBeNil)
			So(cues, ShouldBeNil)
		})

		Convey("Unknown formats are errors", func() {
			write("/media/movie.ass", "[Script Info]")
			_, err := loader.Load("/media/movie.ass")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestSibling(t *testing.T) {
	Convey("Sibling swaps the extension", t, func() {
		So(Sibling("/a/b.mkv", "srt"), ShouldEqual, "/a/b.srt")
		So(Sibling("/a/b.c.mp4", ".vtt"), ShouldEqual, "/a/b.c.vtt")
		So(Sibling("/a/b", "vtt"), ShouldEqual, "/a/b.vtt")
	})
}
