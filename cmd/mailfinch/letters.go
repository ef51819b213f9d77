package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	mailfinch "github.com/mailfinch/client-go"
	"github.com/mailfinch/client-go/internal/cliconfig"
)

func lettersCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "letters",
		Short: "Manage letters",
	}
	cmd.AddCommand(
		listCmd(a),
		getCmd(a),
		createCmd(a),
		updateCmd(a),
		purchaseCmd(a),
	)
	return cmd
}

func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid letter id %q", arg)
	}
	return id, nil
}

func listCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every letter on the account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			letters, err := a.client.GetAllLetters(cmd.Context())
			if err != nil {
				return err
			}
			return a.printLetters(letters)
		},
	}
}

func getCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one letter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			l, err := a.client.GetLetter(cmd.Context(), id)
			if err != nil {
				return err
			}
			return a.printLetter(l)
		},
	}
}

// letterFlags are the fields that can be given on the command line.
type letterFlags struct {
	file        string
	documentURL string
	mailingDate string
	sender      addressFlags
	recipient   addressFlags
}

type addressFlags struct {
	prefix string
	addr   mailfinch.Address
}

func (f *letterFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.file, "file", "", "TOML letter definition")
	fs.StringVar(&f.documentURL, "document-url", "", "public URL of the PDF to print")
	fs.StringVar(&f.mailingDate, "mailing-date", "", "mailing date ("+cliconfig.DateLayout+")")
	f.sender.prefix = "sender"
	f.recipient.prefix = "recipient"
	f.sender.register(fs)
	f.recipient.register(fs)
}

func (f *addressFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.addr.Name, f.prefix+"-name", "", f.prefix+" name")
	fs.StringVar(&f.addr.Street1, f.prefix+"-street1", "", f.prefix+" street line 1")
	fs.StringVar(&f.addr.Street2, f.prefix+"-street2", "", f.prefix+" street line 2")
	fs.StringVar(&f.addr.City, f.prefix+"-city", "", f.prefix+" city")
	fs.StringVar(&f.addr.State, f.prefix+"-state", "", f.prefix+" state")
	fs.StringVar(&f.addr.Zip, f.prefix+"-zip", "", f.prefix+" zip")
	fs.StringVar(&f.addr.Country, f.prefix+"-country", "", f.prefix+" country")
}

// apply merges the changed address flags into *dst, allocating it if needed.
func (f *addressFlags) apply(fs *pflag.FlagSet, dst **mailfinch.Address) {
	fields := []struct {
		name string
		src  string
		dst  func(*mailfinch.Address) *string
	}{
		{"name", f.addr.Name, func(a *mailfinch.Address) *string { return &a.Name }},
		{"street1", f.addr.Street1, func(a *mailfinch.Address) *string { return &a.Street1 }},
		{"street2", f.addr.Street2, func(a *mailfinch.Address) *string { return &a.Street2 }},
		{"city", f.addr.City, func(a *mailfinch.Address) *string { return &a.City }},
		{"state", f.addr.State, func(a *mailfinch.Address) *string { return &a.State }},
		{"zip", f.addr.Zip, func(a *mailfinch.Address) *string { return &a.Zip }},
		{"country", f.addr.Country, func(a *mailfinch.Address) *string { return &a.Country }},
	}
	for _, field := range fields {
		if !fs.Changed(f.prefix + "-" + field.name) {
			continue
		}
		if *dst == nil {
			*dst = &mailfinch.Address{}
		}
		*field.dst(*dst) = field.src
	}
}

// apply loads --file, then overlays explicitly set flags.
func (f *letterFlags) apply(fs *pflag.FlagSet, l *mailfinch.Letter) error {
	if f.file != "" {
		lf, err := cliconfig.LoadLetterFile(f.file)
		if err != nil {
			return err
		}
		if err := lf.Apply(l); err != nil {
			return err
		}
	}
	if fs.Changed("document-url") {
		l.DocumentURL = f.documentURL
	}
	if fs.Changed("mailing-date") {
		d, err := time.Parse(cliconfig.DateLayout, f.mailingDate)
		if err != nil {
			return fmt.Errorf("mailing-date: %w", err)
		}
		l.MailingDate = d
	}
	f.sender.apply(fs, &l.Sender)
	f.recipient.apply(fs, &l.Recipient)
	return nil
}

func createCmd(a *app) *cobra.Command {
	var f letterFlags
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a letter from a TOML file and/or flags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l := a.client.NewLetter()
			if err := f.apply(cmd.Flags(), l); err != nil {
				return err
			}
			if err := l.Save(cmd.Context()); err != nil {
				return err
			}
			a.log.Info().Int("id", l.ID()).Msg("letter created")
			return a.printLetter(l)
		},
	}
	f.register(cmd.Flags())
	return cmd
}

func updateCmd(a *app) *cobra.Command {
	var f letterFlags
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change fields of an existing letter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			l, err := a.client.GetLetter(cmd.Context(), id)
			if err != nil {
				return err
			}
			if err := f.apply(cmd.Flags(), l); err != nil {
				return err
			}
			if err := l.Save(cmd.Context()); err != nil {
				return err
			}
			a.log.Info().Int("id", l.ID()).Msg("letter updated")
			return a.printLetter(l)
		},
	}
	f.register(cmd.Flags())
	return cmd
}

func purchaseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "purchase <id>",
		Short: "Pay for delivery of a letter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			l, err := a.client.GetLetter(cmd.Context(), id)
			if err != nil {
				return err
			}
			if err := l.Purchase(cmd.Context()); err != nil {
				return err
			}
			a.log.Info().Int("id", l.ID()).Time("purchased_at", l.PurchasedAt()).Msg("letter purchased")
			return a.printLetter(l)
		},
	}
}
