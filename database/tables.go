package database

var Tabels []interface{} = []interface{}{
	&List{},
	&User{},
	&Pole{},
	&Event{},
	&Ticket{},
	&Supplier{},
	&Document{},
	&Expense{},
	&ExpenseComment{},
	&Partner{},
	&Sponsor{},
	&Notification{},
}
