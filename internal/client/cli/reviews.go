package cli

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"strings"

	pkgapi "github.com/iudanet/storefront/pkg/api"
)

const reviewUsage = "Usage: storefront review <product-id> <rating 1-5> <comment> | review edit <review-id> [--rating N] [--comment text] | review delete <review-id>"

func (c *Cli) runReview(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing arguments. %s", reviewUsage)
	}
	if err := c.requireAuth(ctx); err != nil {
		return err
	}

	switch args[0] {
	case "edit":
		return c.runReviewEdit(ctx, args[1:])
	case "delete":
		return c.runReviewDelete(ctx, args[1:])
	default:
		return c.runReviewCreate(ctx, args)
	}
}

func (c *Cli) runReviewCreate(ctx context.Context, args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("missing arguments. %s", reviewUsage)
	}

	rating, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid rating %q: must be a number from 1 to 5", args[1])
	}
	comment := strings.Join(args[2:], " ")

	review, err := c.reviews.Create(ctx, args[0], rating, comment)
	if err != nil {
		return err
	}

	c.io.Println("✓ Review submitted successfully")
	c.io.Printf("ID:     %s\n", review.ID)
	c.io.Printf("Rating: %s\n", stars(review.Rating))
	return nil
}

func (c *Cli) runReviewEdit(ctx context.Context, args []string) error {
	fs := c.newFlagSet("review edit")
	rating := fs.Int("rating", 0, "New rating 1-5")
	comment := fs.String("comment", "", "New comment")

	positional, err := parseInterspersed(fs, args)
	if err != nil {
		return err
	}
	if len(positional) != 1 {
		return fmt.Errorf("missing review ID. %s", reviewUsage)
	}

	var req pkgapi.UpdateReviewRequest
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "rating":
			req.Rating = rating
		case "comment":
			req.Comment = comment
		}
	})

	review, err := c.reviews.Update(ctx, positional[0], req)
	if err != nil {
		return err
	}

	c.io.Println("✓ Review updated")
	c.io.Printf("Rating:  %s\n", stars(review.Rating))
	c.io.Printf("Comment: %s\n", review.Comment)
	return nil
}

func (c *Cli) runReviewDelete(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("missing review ID. %s", reviewUsage)
	}

	if err := c.reviews.Delete(ctx, args[0]); err != nil {
		return err
	}

	c.io.Println("✓ Review deleted")
	return nil
}
