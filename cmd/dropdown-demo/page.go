package main

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/forgeui/pkg/dropdown"
	"github.com/dmitrymomot/forgeui/pkg/markup"
)

const htmxScript = "https://unpkg.com/htmx.org@2.0.4"

// pageStyle is the stylesheet the list geometry in pkg/dropdown is modelled on:
// a border-box list with 1px border and 4px padding, 16px root font size.
const pageStyle = `
html { font-size: 16px; font-family: system-ui, sans-serif; }
body { max-width: 32rem; margin: 3rem auto; }
.field { margin-bottom: 1.5rem; }
.field > label { display: block; margin-bottom: .25rem; font-weight: 600; }
.dropdown { position: relative; }
.dropdown-trigger { width: 100%; text-align: left; padding: .5rem .75rem; font: inherit; }
.dropdown-placeholder { color: #777; }
.dropdown-search { width: 100%; box-sizing: border-box; margin-top: .25rem; padding: .25rem .5rem; }
.dropdown-list { position: absolute; z-index: 10; width: 100%; box-sizing: border-box; margin: 0;
  padding: 4px 0; border: 1px solid #bbb; background: #fff; list-style: none; overflow-y: auto; }
.dropdown-option { height: 2.25rem; line-height: 2.25rem; padding: 0 .75rem; cursor: pointer; }
.dropdown-option.highlighted { background: #e8f0fe; }
.dropdown-option.selected { font-weight: 600; }
.dropdown-option.disabled { color: #aaa; cursor: not-allowed; }
.dropdown-no-results { height: 2.25rem; line-height: 2.25rem; padding: 0 .75rem; color: #777; }
`

// pageScript restores the modelled scroll offset and keyboard focus after
// each widget swap.
const pageScript = `
document.body.addEventListener("htmx:afterSettle", function () {
  document.querySelectorAll("[data-scroll-top]").forEach(function (list) {
    list.scrollTop = Number(list.dataset.scrollTop);
  });
  document.querySelectorAll("[data-dropdown][data-state=open]").forEach(function (root) {
    var target = root.querySelector(".dropdown-search") || root.querySelector(".dropdown-trigger");
    if (target && !root.contains(document.activeElement)) target.focus();
  });
});
document.body.addEventListener("dropdown:change", function (e) {
  console.log("dropdown:change", e.detail);
});
`

type field struct {
	widget *dropdown.Select
	label  string
}

type submitted struct {
	label string
	value string
}

// formPage renders every widget inside a form posting to /submit.
func formPage(fields []field) templ.Component {
	return layout("Dropdown demo", func(w *markup.Writer) {
		w.Open("form", templ.OrderedAttributes{
			{Key: "method", Value: "post"},
			{Key: "action", Value: "/submit"},
		})
		for _, f := range fields {
			w.Open("div", templ.OrderedAttributes{{Key: "class", Value: "field"}})
			w.Element("label", templ.OrderedAttributes{{Key: "for", Value: f.widget.ID() + "-trigger"}}, f.label)
			w.Component(f.widget.Component())
			w.Close("div")
		}
		w.Element("button", templ.OrderedAttributes{{Key: "type", Value: "submit"}}, "Submit")
		w.Close("form")
	})
}

// resultPage lists the submitted choices.
func resultPage(values []submitted) templ.Component {
	return layout("Your choices", func(w *markup.Writer) {
		w.Open("dl", nil)
		for _, v := range values {
			value := v.value
			if value == "" {
				value = "(none)"
			}
			w.Element("dt", nil, v.label)
			w.Element("dd", nil, value)
		}
		w.Close("dl")
		w.Element("a", templ.OrderedAttributes{{Key: "href", Value: "/"}}, "Back")
	})
}

func layout(title string, body func(w *markup.Writer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := markup.NewWriter(ctx, out)
		w.Raw("<!DOCTYPE html>")
		w.Open("html", templ.OrderedAttributes{{Key: "lang", Value: "en"}})
		w.Open("head", nil)
		w.Open("meta", templ.OrderedAttributes{{Key: "charset", Value: "utf-8"}})
		w.Open("meta", templ.OrderedAttributes{
			{Key: "name", Value: "viewport"},
			{Key: "content", Value: "width=device-width, initial-scale=1"},
		})
		w.Element("title", nil, title)
		w.Open("style", nil)
		w.Raw(pageStyle)
		w.Close("style")
		w.Open("script", templ.OrderedAttributes{{Key: "src", Value: htmxScript}})
		w.Close("script")
		w.Close("head")
		w.Open("body", nil)
		w.Element("h1", nil, title)
		body(w)
		w.Open("script", nil)
		w.Raw(pageScript)
		w.Close("script")
		w.Close("body")
		w.Close("html")
		return w.Err()
	})
}
