package main

import "github.com/CYSTCloud/TP/cmd"

// @title          Polyteacher Translation API
// @version        v1
// @description    API for translating text between supported languages.
// @termsOfService https://www.adou.org/terms/
// @contact.email  support@adou.org
// @license.name   BSD License
// @BasePath       /
func main() {
	cmd.Execute()
}
