package models

import "testing"

func TestActorCanSee(t *testing.T) {
	ticket := &Ticket{ID: "t_1", CreatedByUserID: "u_creator", EngineerUserID: "u_eng"}

	cases := []struct {
		name  string
		actor Actor
		want  bool
	}{
		{"creator", Actor{ID: "u_creator", Role: RoleEngineer}, true},
		{"assigned engineer", Actor{ID: "u_eng", Role: RoleEngineer}, true},
		{"unrelated engineer", Actor{ID: "u_other", Role: RoleEngineer}, false},
		{"admin", Actor{ID: "u_root", Role: RoleAdmin}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.actor.CanSee(ticket); got != tc.want {
				t.Fatalf("CanSee = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestUserFullName(t *testing.T) {
	if got := (User{FirstName: "Jo", LastName: "Field"}).FullName(); got != "Jo Field" {
		t.Fatalf("got %q", got)
	}
	if got := (User{FirstName: "Jo"}).FullName(); got != "Jo" {
		t.Fatalf("got %q", got)
	}
	if got := (User{LastName: "Field"}).FullName(); got != "Field" {
		t.Fatalf("got %q", got)
	}
}
