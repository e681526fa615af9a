// @title           TekFix Job Board API
// @version         1.0
// @description     API доски вакансий (документация Swagger).
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:4000
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import "tekfix_jobboard/internal/app"

func main() {
	app.Run()
}
