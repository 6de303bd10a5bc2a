package utils

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitParseCustomVar(t *testing.T) {
	Convey("Empty string parses to no vars", t, func() {
		So(ParseCustomVar(""), ShouldBeEmpty)
	})

	Convey("Key value pairs are split on & and the first =", t, func() {
		vars := ParseCustomVar("ip=10.0.0.1&cart_id=abc123")

		So(vars, ShouldHaveLength, 2)
		So(vars["ip"], ShouldEqual, "10.0.0.1")
		So(vars["cart_id"], ShouldEqual, "abc123")
	})

	Convey("Values keep any = after the first", t, func() {
		vars := ParseCustomVar("token=a=b")

		So(vars["token"], ShouldEqual, "a=b")
	})

	Convey("A segment without = maps to an empty value", t, func() {
		vars := ParseCustomVar("flag&ip=10.0.0.1")

		So(vars, ShouldContainKey, "flag")
		So(vars["flag"], ShouldBeEmpty)
	})

	Convey("URL-encoded input is decoded once", t, func() {
		vars := ParseCustomVar("ip%3D10.0.0.1%26cart_id%3Dabc")

		So(vars["ip"], ShouldEqual, "10.0.0.1")
		So(vars["cart_id"], ShouldEqual, "abc")
	})
}

func TestUnitEncodeCustomVar(t *testing.T) {
	Convey("Vars encode back to a parseable string", t, func() {
		vars := map[string]string{"ip": "10.0.0.1", "cart_id": "abc123"}

		encoded := EncodeCustomVar(vars)

		So(ParseCustomVar(encoded), ShouldResemble, vars)
	})

	Convey("Keys are sorted so output is stable", t, func() {
		So(EncodeCustomVar(map[string]string{"b": "2", "a": "1"}), ShouldEqual, "a=1&b=2")
	})
}

func TestUnitAppendCustomVar(t *testing.T) {
	Convey("Appending to an empty string yields just the pair", t, func() {
		So(AppendCustomVar("", "paypal_order_id", "ORD1"), ShouldEqual, "paypal_order_id=ORD1")
	})

	Convey("Appending keeps the existing string untouched", t, func() {
		appended := AppendCustomVar("ip=10.0.0.1", "paypal_order_id", "ORD1")

		So(appended, ShouldEqual, "ip=10.0.0.1&paypal_order_id=ORD1")
		So(ParseCustomVar(appended)["paypal_order_id"], ShouldEqual, "ORD1")
	})
}
