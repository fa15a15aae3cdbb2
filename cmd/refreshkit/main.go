// Command refreshkit replays refresh traces and hosts an interactive demo of
// the pull to refresh and load more engines.
package main

func main() {
	Execute()
}
