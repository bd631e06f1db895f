package debounce

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestTimer(t *testing.T) {
	Convey("Given a timer", t, func() {
		timer := New(250 * time.Millisecond)
		var calls []string

		Convey("Arming returns a tick for the current generation", func() {
			cmd := timer.Arm(func() { calls = append(calls, "a") })
			So(cmd, ShouldNotBeNil)
			So(timer.Pending(), ShouldBeTrue)

			So(timer.Update(FireMsg{ID: timer.ID(), tag: timer.tag}), ShouldBeTrue)
			So(calls, ShouldResemble, []string{"a"})
			So(timer.Pending(), ShouldBeFalse)
		})

		Convey("A later arm supersedes an earlier one", func() {
			timer.Arm(func() { calls = append(calls, "first") })
			stale := FireMsg{ID: timer.ID(), tag: timer.tag}
			timer.Arm(func() { calls = append(calls, "second") })
			current := FireMsg{ID: timer.ID(), tag: timer.tag}

			So(timer.Update(stale), ShouldBeTrue)
			So(calls, ShouldBeEmpty)

			So(timer.Update(current), ShouldBeTrue)
			So(calls, ShouldResemble, []string{"second"})
		})

		Convey("Cancel drops the pending callback", func() {
			timer.Arm(func() { calls = append(calls, "x") })
			msg := FireMsg{ID: timer.ID(), tag: timer.tag}
			timer.Cancel()

			timer.Update(msg)
			So(calls, ShouldBeEmpty)
		})

		Convey("Flush runs the pending callback immediately and once", func() {
			timer.Arm(func() { calls = append(calls, "now") })
			timer.Flush()
			timer.Flush()
			So(calls, ShouldResemble, []string{"now"})
		})

		Convey("Stop disarms and refuses new callbacks", func() {
			timer.Arm(func() { calls = append(calls, "x") })
			timer.Stop()
			So(timer.Pending(), ShouldBeFalse)
			So(timer.Arm(func() { calls = append(calls, "y") }), ShouldBeNil)
			timer.Update(FireMsg{ID: timer.ID(), tag: timer.tag})
			So(calls, ShouldBeEmpty)
		})

		Convey("Messages for other timers are not consumed", func() {
			other := New(time.Second)
			So(timer.Update(FireMsg{ID: other.ID()}), ShouldBeFalse)
			So(timer.Update("tick"), ShouldBeFalse)
		})
	})
}
