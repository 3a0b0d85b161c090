package preview

import (
	"strconv"

	"github.com/vango-go/vangoui/pkg/ui"
	"github.com/vango-go/vangoui/pkg/vdom"
)

// galleryScript drives the live toast demo. It connects to /ws, swaps the
// pushed viewport fragment into #toast-root, and re-dispatches clicks on the
// demo buttons and on dismiss affordances inside the fragment.
const galleryScript = `
(function () {
  var root = document.getElementById("toast-root");
  var proto = location.protocol === "https:" ? "wss://" : "ws://";
  var ws = new WebSocket(proto + location.host + "/ws");

  ws.onmessage = function (ev) {
    var frame = JSON.parse(ev.data);
    if (frame.type === "toasts") {
      root.innerHTML = frame.html;
    }
  };

  function send(msg) {
    if (ws.readyState === WebSocket.OPEN) {
      ws.send(JSON.stringify(msg));
    }
  }

  document.querySelectorAll("[data-demo-toast]").forEach(function (btn) {
    btn.addEventListener("click", function () {
      send({
        op: "toast",
        title: btn.dataset.title,
        description: btn.dataset.description || "",
        kind: btn.dataset.demoToast,
        duration: btn.dataset.duration ? Number(btn.dataset.duration) : 0,
        sticky: btn.dataset.sticky === "true"
      });
    });
  });

  document.getElementById("demo-clear").addEventListener("click", function () {
    send({ op: "clear" });
  });

  root.addEventListener("click", function (ev) {
    var dismiss = ev.target.closest("[data-toast-dismiss]");
    if (dismiss) {
      send({ op: "dismiss", id: dismiss.dataset.toastDismiss });
    }
  });
})();
`

// galleryPage builds the full showcase document.
func galleryPage(position ui.Position) *vdom.VNode {
	return vdom.Html(
		vdom.Lang("en"),
		vdom.Head(
			vdom.Meta(vdom.Charset("utf-8")),
			vdom.Meta(vdom.Name("viewport"), vdom.Content("width=device-width, initial-scale=1")),
			vdom.Title(vdom.Text("vangoui gallery")),
			vdom.Script(vdom.Src("https://cdn.tailwindcss.com")),
		),
		vdom.Body(
			vdom.Class("bg-zinc-50 text-zinc-900"),
			vdom.Div(
				vdom.Class("mx-auto max-w-4xl px-6 py-12 space-y-12"),
				vdom.H1(vdom.Class("text-3xl font-bold"), vdom.Text("vangoui")),
				buttonSection(),
				badgeSection(),
				avatarSection(),
				cardSection(),
				skeletonSection(),
				formSection(),
				dropdownSection(),
				toastSection(),
			),
			vdom.Div(vdom.ID("toast-root"), vdom.Data("position", string(position))),
			vdom.Script(vdom.Raw(galleryScript)),
		),
	)
}

func section(title string, children ...any) *vdom.VNode {
	args := []any{
		vdom.Class("space-y-4"),
		vdom.H2(vdom.Class("text-xl font-semibold border-b border-zinc-200 pb-2"), vdom.Text(title)),
	}
	return vdom.Section(append(args, children...)...)
}

func row(children ...any) *vdom.VNode {
	args := []any{vdom.Class("flex flex-wrap items-center gap-3")}
	return vdom.Div(append(args, children...)...)
}

func buttonSection() *vdom.VNode {
	return section("Buttons",
		row(
			ui.Button{Label: "Default"},
			ui.Button{Label: "Primary", Variant: ui.VariantPrimary},
			ui.Button{Label: "Secondary", Variant: ui.VariantSecondary},
			ui.Button{Label: "Destructive", Variant: ui.VariantDestructive},
			ui.Button{Label: "Outline", Variant: ui.VariantOutline},
			ui.Button{Label: "Ghost", Variant: ui.VariantGhost},
		),
		row(
			ui.Button{Label: "Small", Size: ui.SizeSmall},
			ui.Button{Label: "Medium", Size: ui.SizeMedium},
			ui.Button{Label: "Large", Size: ui.SizeLarge},
			ui.Button{Label: "Disabled", Disabled: true},
			ui.Button{Label: "Saving", Loading: true},
		),
	)
}

func badgeSection() *vdom.VNode {
	return section("Badges",
		row(
			ui.Badge{Label: "Default"},
			ui.Badge{Label: "Primary", Variant: ui.VariantPrimary},
			ui.Badge{Label: "Destructive", Variant: ui.VariantDestructive},
			ui.Badge{Label: "Outline", Variant: ui.VariantOutline},
		),
	)
}

func avatarSection() *vdom.VNode {
	return section("Avatars",
		row(
			ui.Avatar{Name: "Ada Lovelace", Size: ui.SizeSmall},
			ui.Avatar{Name: "Grace Hopper"},
			ui.Avatar{Name: "Alan Turing", Size: ui.SizeLarge},
			ui.Avatar{Src: "https://i.pravatar.cc/80?img=5", Name: "Example User"},
		),
	)
}

func cardSection() *vdom.VNode {
	return section("Cards",
		ui.Card{
			Title:       "Billing",
			Description: "Manage your subscription and payment methods.",
			Body: vdom.P(
				vdom.Class("text-sm text-zinc-600"),
				vdom.Text("Your plan renews on the first of every month."),
			),
			Footer: ui.Button{Label: "Upgrade", Variant: ui.VariantPrimary, Size: ui.SizeSmall}.Render(),
		},
	)
}

func skeletonSection() *vdom.VNode {
	return section("Skeletons",
		row(
			ui.Skeleton{Shape: ui.SkeletonCircle},
			vdom.Div(
				vdom.Class("flex-1 space-y-2"),
				ui.Skeleton{Shape: ui.SkeletonLine, Lines: 3},
			),
		),
		ui.Skeleton{Shape: ui.SkeletonBlock},
	)
}

func formSection() *vdom.VNode {
	return section("Form fields",
		vdom.Div(
			vdom.Class("grid gap-6 md:grid-cols-2"),
			ui.Input{ID: "demo-email", Label: "Email", Placeholder: "ada@example.com"},
			ui.Input{ID: "demo-handle", Label: "Handle", Value: "ada", MaxLength: 20},
			ui.Input{ID: "demo-bad", Label: "Server", Value: "not a host", Error: "must be a valid hostname"},
			ui.TextArea{ID: "demo-bio", Label: "Bio", Placeholder: "Tell us about yourself", AutoResize: true, MaxRows: 8},
		),
	)
}

func dropdownSection() *vdom.VNode {
	return section("Dropdown",
		ui.Dropdown{
			Label: "Actions",
			Open:  true,
			Items: []ui.DropdownItem{
				{Label: "Edit"},
				{Label: "Duplicate"},
				{Separator: true},
				{Label: "Archive", Disabled: true},
				{Label: "Delete", Destructive: true},
			},
		},
	)
}

// toastSection holds the buttons that drive the live notification demo over
// the WebSocket channel.
func toastSection() *vdom.VNode {
	demoButton := func(label, kind, title, description string, durationMS int, sticky bool) *vdom.VNode {
		return vdom.Button(
			vdom.Class("inline-flex h-10 items-center rounded-md bg-zinc-900 px-4 text-sm text-white hover:bg-zinc-800"),
			vdom.Data("demo-toast", kind),
			vdom.Data("title", title),
			vdom.AttrIf(description != "", vdom.Data("description", description)),
			vdom.AttrIf(durationMS > 0, vdom.Data("duration", strconv.Itoa(durationMS))),
			vdom.AttrIf(sticky, vdom.Data("sticky", "true")),
			vdom.Text(label),
		)
	}

	return section("Toasts (live)",
		vdom.P(
			vdom.Class("text-sm text-zinc-600"),
			vdom.Text("Each button sends an operation over the WebSocket channel; the server renders the viewport and pushes it back."),
		),
		row(
			demoButton("Success", "success", "Changes saved", "", 0, false),
			demoButton("Error", "error", "Deploy failed", "The build step exited with status 1.", 0, false),
			demoButton("Warning", "warning", "Disk almost full", "", 8000, false),
			demoButton("Info", "info", "Update available", "Version 2.1 is ready to install.", 0, false),
			demoButton("Sticky", "default", "Pinned note", "This one stays until dismissed.", 0, true),
			vdom.Button(
				vdom.ID("demo-clear"),
				vdom.Class("inline-flex h-10 items-center rounded-md border border-zinc-300 bg-white px-4 text-sm hover:bg-zinc-100"),
				vdom.Text("Clear all"),
			),
		),
	)
}
