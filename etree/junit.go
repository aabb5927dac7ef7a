// Package etree writes check results as JUnit XML using etree, so CI
// systems can display bad links as failed test cases.
package etree

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/linkcheck"
)

// SuiteName is the name of the generated test suite.
const SuiteName = "linkcheck"

// WriteJUnit writes result to w as a JUnit XML report with one test case
// per checked reference. Bad links carry a failure element whose message is
// the reason and whose body lists the referencing documents.
func WriteJUnit(w io.Writer, result *linkcheck.Result) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	bad := make(map[linkcheck.Reference]linkcheck.BadLink, len(result.BadLinks))
	for _, link := range result.BadLinks {
		bad[link.Reference] = link
	}

	suites := doc.CreateElement("testsuites")
	suite := suites.CreateElement("testsuite")
	suite.CreateAttr("name", SuiteName)
	suite.CreateAttr("tests", strconv.Itoa(len(result.Checked)))
	suite.CreateAttr("failures", strconv.Itoa(len(result.BadLinks)))
	suite.CreateAttr("errors", "0")

	props := suite.CreateElement("properties")
	addProperty(props, "startFile", result.StartFile)
	addProperty(props, "fingerprint", result.Fingerprint)

	for _, ref := range result.Checked {
		tc := suite.CreateElement("testcase")
		tc.CreateAttr("classname", SuiteName)
		tc.CreateAttr("name", string(ref))

		link, ok := bad[ref]
		if !ok {
			continue
		}
		failure := tc.CreateElement("failure")
		failure.CreateAttr("type", string(link.Reason))
		failure.CreateAttr("message", link.Reason.Description())
		if len(link.Sources) > 0 {
			failure.SetText("referenced from:\n" + strings.Join(link.Sources, "\n"))
		}
	}

	doc.Indent(2)
	if _, err := doc.WriteTo(w); err != nil {
		return fmt.Errorf("writing JUnit report: %w", err)
	}
	return nil
}

func addProperty(props *etree.Element, name, value string) {
	p := props.CreateElement("property")
	p.CreateAttr("name", name)
	p.CreateAttr("value", value)
}
