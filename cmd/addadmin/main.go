// Command addadmin creates an administrator account from the command line,
// for bootstrapping a fresh installation before any admin can log in.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/IbnIssah/SchoolManagementSystem/app/database"
	"github.com/IbnIssah/SchoolManagementSystem/app/models"
)

func main() {
	name := flag.String("name", "", "display name of the admin")
	username := flag.String("username", "", "login username")
	passwd := flag.String("password", "", "login password")
	flag.Parse()

	if *username == "" || *passwd == "" {
		fmt.Fprintln(os.Stderr, "usage: addadmin -name NAME -username USER -password PASS")
		os.Exit(2)
	}
	if *name == "" {
		*name = *username
	}

	ds, err := database.Open()
	if err != nil {
		log.Fatal("Failed to open a database backend:", err)
	}
	defer ds.Shutdown()

	if err := database.EnsureSchema(ds); err != nil {
		log.Fatal("Failed to provision schema:", err)
	}

	admin := models.Admin{Name: *name, Username: *username}
	if err := database.CreateAdmin(ds, &admin, *passwd); err != nil {
		log.Fatal("Error creating admin: ", err)
	}

	fmt.Printf("Admin created successfully: %s (%s)\n", admin.Name, admin.Username)
}
