package main

import "order_pricing/internal/interfaces/cli"

func main() {
	cli.Execute()
}
