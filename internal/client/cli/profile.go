package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"text/template"

	pkgapi "github.com/iudanet/storefront/pkg/api"
)

var profileTmpl = template.Must(template.New("profile").Funcs(template.FuncMap{
	"date": formatDate,
}).Parse(profileTemplate))

func (c *Cli) runProfile(ctx context.Context, args []string) error {
	if err := c.requireAuth(ctx); err != nil {
		return err
	}

	if len(args) > 0 {
		if args[0] != "update" {
			return fmt.Errorf("unknown profile subcommand %q. Usage: storefront profile [update --name NAME --avatar URL]", args[0])
		}
		return c.runProfileUpdate(ctx, args[1:])
	}

	profile, err := c.profile.Fetch(ctx)
	if err != nil {
		return err
	}

	return profileTmpl.Execute(c.io, profile)
}

func (c *Cli) runProfileUpdate(ctx context.Context, args []string) error {
	fs := c.newFlagSet("profile update")
	name := fs.String("name", "", "Full name")
	avatar := fs.String("avatar", "", "Avatar URL")

	if err := fs.Parse(args); err != nil {
		return err
	}

	var req pkgapi.ProfileUpdateRequest
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "name":
			v := strings.TrimSpace(*name)
			req.FullName = &v
		case "avatar":
			v := strings.TrimSpace(*avatar)
			req.AvatarURL = &v
		}
	})
	if req.FullName == nil && req.AvatarURL == nil {
		return fmt.Errorf("nothing to update. Use --name and/or --avatar")
	}

	session, err := c.currentSession(ctx)
	if err != nil {
		return err
	}

	profile, err := c.profile.Update(ctx, session.User.ID, req)
	if err != nil {
		return err
	}

	c.io.Println("✓ Profile updated")
	return profileTmpl.Execute(c.io, profile)
}
