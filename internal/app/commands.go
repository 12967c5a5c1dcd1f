package app

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"golang.org/x/term"

	"github.com/aora/client/internal/aora"
	"github.com/aora/client/internal/models"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

func (d dependencies) signUp(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("signup", flag.ContinueOnError)
	email := fs.String("email", "", "account email")
	username := fs.String("username", "", "display name")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" || *username == "" {
		return errors.New("signup requires -email and -username")
	}

	password, err := promptPassword()
	if err != nil {
		return err
	}

	profile, err := d.service.CreateUser(ctx, *email, password, *username)
	if err != nil {
		return err
	}

	if err := d.sessions.save(d.client.Session()); err != nil {
		return err
	}

	return printJSON(profile)
}

func (d dependencies) logIn(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	email := fs.String("email", "", "account email")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" {
		return errors.New("login requires -email")
	}

	password, err := promptPassword()
	if err != nil {
		return err
	}

	if _, err := d.service.SignIn(ctx, *email, password); err != nil {
		return err
	}

	if err := d.sessions.save(d.client.Session()); err != nil {
		return err
	}

	fmt.Println("signed in")
	return nil
}

func (d dependencies) logOut(ctx context.Context) error {
	if err := d.service.SignOut(ctx); err != nil {
		return err
	}
	if err := d.sessions.clear(); err != nil {
		return err
	}

	fmt.Println("signed out")
	return nil
}

func (d dependencies) whoAmI(ctx context.Context) error {
	profile := d.service.CurrentUser(ctx)
	if profile == nil {
		fmt.Println("not signed in")
		return nil
	}
	return printJSON(profile)
}

func (d dependencies) feed(ctx context.Context) error {
	posts, err := d.service.AllPosts(ctx)
	if err != nil {
		return err
	}
	return printJSON(posts)
}

func (d dependencies) latest(ctx context.Context) error {
	posts, err := d.service.LatestPosts(ctx)
	if err != nil {
		return err
	}
	return printJSON(posts)
}

func (d dependencies) search(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("search requires a term")
	}

	posts, err := d.service.SearchPosts(ctx, args[0])
	if err != nil {
		return err
	}
	return printJSON(posts)
}

func (d dependencies) mine(ctx context.Context, args []string) error {
	userID := ""
	if len(args) > 0 {
		userID = args[0]
	} else {
		profile := d.service.CurrentUser(ctx)
		if profile == nil {
			return errors.New("not signed in; pass a user id or log in first")
		}
		userID = profile.ID
	}

	posts, err := d.service.UserPosts(ctx, userID)
	if err != nil {
		return err
	}
	return printJSON(posts)
}

func (d dependencies) publish(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("publish", flag.ContinueOnError)
	title := fs.String("title", "", "video title")
	prompt := fs.String("prompt", "", "generation prompt")
	videoPath := fs.String("video", "", "path to the video file")
	thumbnailPath := fs.String("thumbnail", "", "path to the thumbnail image")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *title == "" || *videoPath == "" || *thumbnailPath == "" {
		return errors.New("publish requires -title, -video, and -thumbnail")
	}

	profile := d.service.CurrentUser(ctx)
	if profile == nil {
		return errors.New("not signed in")
	}

	post, err := d.service.CreateVideo(ctx, aora.VideoForm{
		Title:     *title,
		Prompt:    *prompt,
		Thumbnail: localAsset(*thumbnailPath),
		Video:     localAsset(*videoPath),
		UserID:    profile.ID,
	})
	if err != nil {
		return err
	}

	return printJSON(post)
}

func localAsset(path string) *models.Asset {
	return &models.Asset{
		Name:     filepath.Base(path),
		MIMEType: mime.TypeByExtension(filepath.Ext(path)),
		Path:     path,
	}
}

func promptPassword() (string, error) {
	fmt.Fprint(os.Stderr, "Password: ")
	password, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	if len(password) == 0 {
		return "", errors.New("password must not be empty")
	}
	return string(password), nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
