package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/quillpost/go-headers/header"
	"github.com/quillpost/go-headers/header/field"
	"github.com/quillpost/go-headers/message"
)

var (
	from    string
	sendAs  string
	to      []string
	cc      []string
	bcc     []string
	subject string
	resent  bool
)

var printCmd = &cobra.Command{
	Use:   "print",
	Short: "Compose a message from flags and standard input and print it",
	Run:   RunPrint,
}

func init() {
	printCmd.Flags().StringVar(&from, "from", "", "From address")
	printCmd.Flags().StringVar(&sendAs, "sender", "", "Sender address, overrides From")
	printCmd.Flags().StringSliceVar(&to, "to", nil, "To addresses")
	printCmd.Flags().StringSliceVar(&cc, "cc", nil, "Cc addresses")
	printCmd.Flags().StringSliceVar(&bcc, "bcc", nil, "Bcc addresses, never printed as a header")
	printCmd.Flags().StringVar(&subject, "subject", "", "Subject text")
	printCmd.Flags().BoolVar(&resent, "resent", false, "Mark the message as resent")
	rootCmd.AddCommand(printCmd)
}

func RunPrint(cmd *cobra.Command, args []string) {
	h := header.New(
		field.Date(""),
		field.MessageID("", ""),
	)
	if from != "" {
		h.Set(header.From, from)
	}
	if sendAs != "" {
		h.Add(field.Sender(sendAs))
	}
	if len(to) > 0 {
		h.Add(field.To(to...))
	}
	if len(cc) > 0 {
		h.Add(field.Cc(cc...))
	}
	if len(bcc) > 0 {
		h.Add(field.Bcc(bcc...))
	}
	if subject != "" {
		h.Add(field.Subject(subject))
	}
	if resent {
		h.Set(header.ResentDate, field.Date("").Body())
	}

	body, err := io.ReadAll(os.Stdin)
	if err != nil {
		panic(err)
	}

	buf := &message.Buffer{}
	buf.SetBreak(message.LF)
	buf.SetBody(body)
	h.Prepare(buf)

	if s, err := h.Sender(); err == nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "envelope sender: %s\n", s)
	}
	for _, r := range h.Receivers() {
		fmt.Fprintf(cmd.ErrOrStderr(), "envelope recipient: %s\n", r)
	}

	_, err = buf.WriteTo(cmd.OutOrStdout())
	if err != nil {
		panic(err)
	}
}
