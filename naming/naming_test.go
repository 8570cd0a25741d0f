/*******************************************************************************
 * Copyright (c) 2025 Genome Research Ltd.
 *
 * Authors:
 *	- Sendu Bala <sb10@sanger.ac.uk>
 *
 * Permission is hereby granted, free of charge, to any person obtaining
 * a copy of this software and associated documentation files (the
 * "Software"), to deal in the Software without restriction, including
 * without limitation the rights to use, copy, modify, merge, publish,
 * distribute, sublicense, and/or sell copies of the Software, and to
 * permit persons to whom the Software is furnished to do so, subject to
 * the following conditions:
 *
 * The above copyright notice and this permission notice shall be included
 * in all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
 * EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
 * MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.
 * IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY
 * CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT,
 * TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION WITH THE
 * SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
 ******************************************************************************/

package naming

import (
	"errors"
	"regexp"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func testGrammar() *Grammar {
	return NewGrammar(
		Field{
			Name:     "word",
			Label:    "Word",
			Capture:  `[^_]+`,
			Required: true,
			Valid:    regexp.MustCompile(`^[a-z]+$`),
		},
		Field{
			Name:     "num",
			Label:    "Number",
			Lead:     Separator,
			Capture:  `\d+`,
			Optional: true,
			Valid:    regexp.MustCompile(`^\d{2}$`),
		},
		Field{
			Name:     "ext",
			Label:    "Extension",
			Lead:     ".",
			Capture:  `\w+`,
			Required: true,
			Valid:    regexp.MustCompile(`^txt$`),
		},
	)
}

func TestGrammar(t *testing.T) {
	Convey("Given a Grammar", t, func() {
		g := testGrammar()
		So(g.Fields(), ShouldResemble, []string{"word", "num", "ext"})
		So(g.Has("num"), ShouldBeTrue)
		So(g.Has("path"), ShouldBeFalse)
		So(g.Pattern(), ShouldEqual, `^([^_]+)(?:_(\d+))?\.(\w+)$`)

		Convey("You can decompose names with and without paths", func() {
			path, values, err := g.Decompose("abc_12.txt")
			So(err, ShouldBeNil)
			So(path, ShouldBeEmpty)
			So(values, ShouldResemble, map[string]string{"word": "abc", "num": "12", "ext": "txt"})

			path, values, err = g.Decompose("/a/b/abc.doc")
			So(err, ShouldBeNil)
			So(path, ShouldEqual, "/a/b")
			So(values, ShouldResemble, map[string]string{"word": "abc", "num": "", "ext": "doc"})
		})

		Convey("Decomposition fails for the wrong shape", func() {
			_, _, err := g.Decompose("/a/abc_12")

			var me *MalformedError
			So(errors.As(err, &me), ShouldBeTrue)
			So(me.Name, ShouldEqual, "abc_12")
			So(err.Error(), ShouldEqual, "Wrong naming format (abc_12)")
		})

		Convey("You can validate single fields", func() {
			So(g.Validate("word", "abc"), ShouldBeNil)
			So(g.Validate("num", ""), ShouldBeNil)

			err := g.Validate("num", "123")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldEqual, "Number invalid (123)")

			var fe *FieldError
			So(errors.As(err, &fe), ShouldBeTrue)
			So(fe.Field, ShouldEqual, "num")
			So(fe.Value, ShouldEqual, "123")

			err = g.Validate("word", "")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldEqual, "Word invalid ()")

			err = g.Validate("foo", "abc")
			So(errors.Is(err, ErrUnknownField), ShouldBeTrue)
		})

		Convey("You can parse names in to Records", func() {
			r, err := g.Parse("dir/abc_12.txt")
			So(err, ShouldBeNil)
			So(r.Path(), ShouldEqual, "dir")
			So(r.Get("word"), ShouldEqual, "abc")
			So(r.Get("num"), ShouldEqual, "12")
			So(r.Get("foo"), ShouldBeEmpty)
			So(r.Join("word", "num"), ShouldEqual, "abc_12")
			So(r.Values(), ShouldResemble, map[string]string{"word": "abc", "num": "12", "ext": "txt"})
			So(r.IsModified(), ShouldBeFalse)

			Convey("Which can then be modified", func() {
				err = r.Set("num", "")
				So(err, ShouldBeNil)
				So(r.Join("word", "num"), ShouldEqual, "abc")
				So(r.IsModified(), ShouldBeTrue)
			})

			Convey("But not with invalid values", func() {
				err = r.Set("num", "x")
				So(err, ShouldNotBeNil)
				So(r.Get("num"), ShouldEqual, "12")
				So(r.IsModified(), ShouldBeFalse)

				err = r.Set("foo", "abc")
				So(errors.Is(err, ErrUnknownField), ShouldBeTrue)
			})
		})

		Convey("Parsing reports all invalid fields", func() {
			_, err := g.Parse("ABC_123.doc")

			var fe FieldErrors
			So(errors.As(err, &fe), ShouldBeTrue)
			So(fe.Fields(), ShouldResemble, []string{"word", "num", "ext"})
			So(err.Error(), ShouldEqual, "Word invalid (ABC), Number invalid (123), Extension invalid (doc)")
		})

		Convey("You can make Records from values", func() {
			r, err := g.NewRecord("p", map[string]string{"word": "abc", "ext": "txt", "other": "x"})
			So(err, ShouldBeNil)
			So(r.Path(), ShouldEqual, "p")
			So(r.Join("word", "num", "ext"), ShouldEqual, "abc_txt")

			_, err = g.NewRecord("", map[string]string{"num": "12"})

			var fe FieldErrors
			So(errors.As(err, &fe), ShouldBeTrue)
			So(fe.Fields(), ShouldResemble, []string{"word", "ext"})
		})
	})

	Convey("Grammars with repeated fields can't be made", t, func() {
		f := Field{Name: "a", Capture: `.*`, Valid: regexp.MustCompile(`.*`)}
		So(func() { NewGrammar(f, f) }, ShouldPanic)
	})

	Convey("Captures can't contain groups", t, func() {
		f := Field{Name: "a", Capture: `(a|b)`, Valid: regexp.MustCompile(`.*`)}
		So(func() { NewGrammar(f) }, ShouldPanic)
	})
}

func TestPaths(t *testing.T) {
	Convey("SplitPath splits on the final separator", t, func() {
		for fullname, want := range map[string][2]string{
			"name":      {"", "name"},
			"a/name":    {"a", "name"},
			"/a/b/name": {"/a/b", "name"},
			"a//name":   {"a/", "name"},
			"/a/b/":     {"/a/b", ""},
		} {
			path, name := SplitPath(fullname)
			So(path, ShouldEqual, want[0])
			So(name, ShouldEqual, want[1])
			So(JoinPath(path, name), ShouldEqual, fullname)
		}
	})
}

func TestHash(t *testing.T) {
	Convey("Hash gives a stable salted sha256", t, func() {
		So(Hash("NGS123_12_382398_JD_M_VCP0R33_Pan0000"), ShouldEqual,
			"998121029e4cd9b64ec7f9218f776255dd16642db498c50e3f2f378153272d84")
		So(Hash("ab"), ShouldEqual, "bf752d0bb3695100b155a1643bb8bba51eabdfad302968fcceb7883c7bc67073")
		So(Hash("ab"), ShouldNotEqual, Hash("ba"))
	})
}
