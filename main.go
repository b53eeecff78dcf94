package main

import (
	"context"

	"github.com/cube2222/exprtraits/cmd"
)

func main() {
	cmd.Execute(context.Background())
}
