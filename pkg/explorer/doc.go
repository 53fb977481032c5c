// Package explorer implements the interactive catalog browser.
//
// An Explorer owns one catalog session and walks the operator through three
// levels of menus:
//
//   - the top-level menu picks an object category (tables, views, sequences
//     or users)
//   - the lister prints the numbered objects of that category and resolves
//     the operator's pick
//   - the detail menu of the category runs one metadata query per option
//     until the operator goes back
//
// Categories are plain data (see Categories). A single driver renders every
// detail menu, so adding an option means adding a catalog.Detail query and
// an Option entry.
//
// Example:
//
//	client, err := catalog.Connect(ctx, opts)
//	if err != nil {
//		return err
//	}
//
//	reader, err := prompt.Open(prompt.Options{})
//	if err != nil {
//		return err
//	}
//	defer reader.Close()
//
//	return explorer.New(client, client.Dialect(), reader, os.Stdout).Run(ctx)
package explorer
