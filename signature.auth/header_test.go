// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package auth

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestHeaderFormatParsing(t *testing.T) {
	valid := []struct {
		template string
		parsed   HeaderFormat
	}{
		{"{}", HeaderFormat{}},
		{"HMAC {}", HeaderFormat{Prefix: "HMAC "}},
		{"sha256={}", HeaderFormat{Prefix: "sha256="}},
		{"v1,{},end", HeaderFormat{Prefix: "v1,", Suffix: ",end"}},
		{"{}\"", HeaderFormat{Suffix: "\""}},
	}

	Convey("Header format conversion", t, func() {
		Convey("works from string to struct with valid templates", func() {
			for _, row := range valid {
				f, err := ParseHeaderFormat(row.template)
				So(err, ShouldBeNil)
				So(f, ShouldResemble, row.parsed)
				So(f.String(), ShouldEqual, row.template)
			}
		})

		Convey("yields the expected errors on invalid templates", func() {
			_, err := ParseHeaderFormat("")
			So(err, ShouldEqual, errFormatNoPlaceholder)

			_, err = ParseHeaderFormat("HMAC %s")
			So(err, ShouldEqual, errFormatNoPlaceholder)

			_, err = ParseHeaderFormat("HMAC { }")
			So(err, ShouldEqual, errFormatNoPlaceholder)

			_, err = ParseHeaderFormat("{}:{}")
			So(err, ShouldEqual, errFormatManyPlaceholders)
		})
	})
}

func TestHeaderFormatExtraction(t *testing.T) {
	Convey("A header format with prefix and suffix", t, func() {
		f := HeaderFormat{Prefix: "sig=<", Suffix: ">"}

		Convey("extracts what is in between", func() {
			token, ok := f.Extract("sig=<abc>")
			So(ok, ShouldBeTrue)
			So(token, ShouldEqual, "abc")
		})

		Convey("is the inverse of Render", func() {
			token, ok := f.Extract(f.Render("uYRUNd8Qu0vogK9Kv92FWZrFMsoroEl0RfE8hMUJAl8="))
			So(ok, ShouldBeTrue)
			So(token, ShouldEqual, "uYRUNd8Qu0vogK9Kv92FWZrFMsoroEl0RfE8hMUJAl8=")
		})

		Convey("rejects values lacking either", func() {
			for _, value := range []string{
				"", "abc", "sig=<abc", "abc>", "sig=abc>", "SIG=<abc>", " sig=<abc>",
			} {
				_, ok := f.Extract(value)
				So(ok, ShouldBeFalse)
			}
		})

		Convey("rejects values in which they overlap, or are all there is", func() {
			for _, value := range []string{"sig=<", "sig=<>"} {
				_, ok := f.Extract(value)
				So(ok, ShouldBeFalse)
			}
		})
	})

	Convey("The bare placeholder", t, func() {
		f, _ := ParseHeaderFormat(Placeholder)

		Convey("passes values through", func() {
			token, ok := f.Extract("HMAC 1234")
			So(ok, ShouldBeTrue)
			So(token, ShouldEqual, "HMAC 1234")
		})

		Convey("does not accept empty values", func() {
			_, ok := f.Extract("")
			So(ok, ShouldBeFalse)
		})
	})
}
