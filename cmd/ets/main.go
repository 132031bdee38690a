package main

import "github.com/reusee/tagmachines/programs"

func main() {
	programs.Main(programs.ETS)
}
