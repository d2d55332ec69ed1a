package main

import railenv "github.com/railwayapp/railenv/cmd/railenv"

func main() {
	railenv.Execute()
}
