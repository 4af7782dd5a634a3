package handlers

import (
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gofiber/fiber/v2"

	"farmacia/internal/services"
)

const layout = "layout"

func render(c *fiber.Ctx, tmpl string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	if u := currentUser(c); u != nil {
		data["User"] = u
	}
	tok, _ := c.Locals("CSRFToken").(string)
	if tok == "" {
		// middleware did not populate Locals; fall back to the cookie
		tok = c.Cookies("csrf_")
	}
	data["CSRFToken"] = tok
	return c.Render(tmpl, data, layout)
}

// renderMessage shows the generic message page with status.
func renderMessage(c *fiber.Ctx, status int, msg string) error {
	return render(c.Status(status), "notfound", fiber.Map{"Title": "Aviso", "Message": msg})
}

// ViewFuncs are the template helpers every view may use.
func ViewFuncs() map[string]any {
	return map[string]any{
		"clp":       clp,
		"unitPrice": services.UnitPrice,
	}
}

// clp formats whole pesos as "$1.990".
func clp(n int) string {
	return "$" + strings.ReplaceAll(humanize.Comma(int64(n)), ",", ".")
}
