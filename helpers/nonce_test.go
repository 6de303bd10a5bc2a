package helpers

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitNonceService(t *testing.T) {
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	svc := &NonceService{Secret: "test-secret", now: func() time.Time { return now }}

	Convey("A generated nonce verifies for its action", t, func() {
		nonce := svc.Generate("ppcp-checkout")

		So(nonce, ShouldNotBeEmpty)
		So(svc.Verify(nonce, "ppcp-checkout"), ShouldBeTrue)
	})

	Convey("A nonce does not verify for a different action", t, func() {
		nonce := svc.Generate("ppcp-checkout")

		So(svc.Verify(nonce, "other-action"), ShouldBeFalse)
	})

	Convey("An empty or garbage nonce does not verify", t, func() {
		So(svc.Verify("", "ppcp-checkout"), ShouldBeFalse)
		So(svc.Verify("not-a-nonce", "ppcp-checkout"), ShouldBeFalse)
	})

	Convey("A nonce from the previous tick still verifies", t, func() {
		nonce := svc.Generate("ppcp-checkout")

		later := &NonceService{Secret: "test-secret", now: func() time.Time { return now.Add(13 * time.Hour) }}

		So(later.Verify(nonce, "ppcp-checkout"), ShouldBeTrue)
	})

	Convey("A nonce two ticks old is rejected", t, func() {
		nonce := svc.Generate("ppcp-checkout")

		later := &NonceService{Secret: "test-secret", now: func() time.Time { return now.Add(25 * time.Hour) }}

		So(later.Verify(nonce, "ppcp-checkout"), ShouldBeFalse)
	})

	Convey("A nonce signed with a different secret is rejected", t, func() {
		other := &NonceService{Secret: "other-secret", now: func() time.Time { return now }}

		So(svc.Verify(other.Generate("ppcp-checkout"), "ppcp-checkout"), ShouldBeFalse)
	})
}
