// Package mailfinch provides a Go client for the MailFinch letters API,
// which prints a PDF and posts it as a physical letter.
//
// Basic usage:
//
//	client, err := mailfinch.New("your-api-key")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	letter := client.NewLetter()
//	letter.DocumentURL = "https://example.com/invoice.pdf"
//	letter.Sender = &mailfinch.Address{Name: "Ann", Street1: "1 Main St", City: "Springfield", State: "IL", Zip: "62701"}
//	letter.Recipient = &mailfinch.Address{Name: "Bob", Street1: "2 Oak Ave", City: "Portland", State: "OR", Zip: "97201"}
//
//	if err := letter.Save(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	if err := letter.Purchase(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// Every failure is an *Error. Use errors.Is with the Err* sentinels, or
// errors.As to read its Kind and StatusCode.
package mailfinch
