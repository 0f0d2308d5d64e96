package seed

import (
	"acmedash/internal/models"

	"github.com/google/uuid"
)

// Bootstrap data for non-production environments. Customer ids are
// fixed so re-runs reference the same rows; invoices reference
// customers by email and are resolved against the live table at seed
// time.

type placeholderUser struct {
	Name     string
	Email    string
	Password string
}

type placeholderInvoice struct {
	CustomerEmail string
	Amount        int64 // cents
	Status        models.InvoiceStatus
	Date          string // ISO-8601 date
}

var placeholderUsers = []placeholderUser{
	{Name: "User", Email: "user@nextmail.com", Password: "123456"},
}

var placeholderCustomers = []*models.Customer{
	{ID: uuid.MustParse("d6e15727-9fe1-4961-8c5b-ea44a9bd81aa"), Name: "Evil Rabbit", Email: "evil@rabbit.com", ImageURL: "/customers/evil-rabbit.png"},
	{ID: uuid.MustParse("3958dc9e-712f-4377-85e9-fec4b6a6442a"), Name: "Delba de Oliveira", Email: "delba@oliveira.com", ImageURL: "/customers/delba-de-oliveira.png"},
	{ID: uuid.MustParse("3958dc9e-742f-4377-85e9-fec4b6a6442a"), Name: "Lee Robinson", Email: "lee@robinson.com", ImageURL: "/customers/lee-robinson.png"},
	{ID: uuid.MustParse("76d65c26-f784-44a2-ac19-586678f7c2f2"), Name: "Michael Novotny", Email: "michael@novotny.com", ImageURL: "/customers/michael-novotny.png"},
	{ID: uuid.MustParse("cc27c14a-0acf-4f4a-a6c9-d45682c144b9"), Name: "Amy Burns", Email: "amy@burns.com", ImageURL: "/customers/amy-burns.png"},
	{ID: uuid.MustParse("13d07535-c59e-4157-a011-f8d2ef4e0cbb"), Name: "Balazs Orban", Email: "balazs@orban.com", ImageURL: "/customers/balazs-orban.png"},
}

var placeholderInvoices = []placeholderInvoice{
	{CustomerEmail: "evil@rabbit.com", Amount: 15795, Status: models.InvoiceStatusPending, Date: "2022-12-06"},
	{CustomerEmail: "delba@oliveira.com", Amount: 20348, Status: models.InvoiceStatusPending, Date: "2022-11-14"},
	{CustomerEmail: "amy@burns.com", Amount: 3040, Status: models.InvoiceStatusPaid, Date: "2022-10-29"},
	{CustomerEmail: "michael@novotny.com", Amount: 44800, Status: models.InvoiceStatusPaid, Date: "2023-09-10"},
	{CustomerEmail: "balazs@orban.com", Amount: 34577, Status: models.InvoiceStatusPending, Date: "2023-08-05"},
	{CustomerEmail: "lee@robinson.com", Amount: 54246, Status: models.InvoiceStatusPending, Date: "2023-07-16"},
	{CustomerEmail: "evil@rabbit.com", Amount: 666, Status: models.InvoiceStatusPending, Date: "2023-06-27"},
	{CustomerEmail: "michael@novotny.com", Amount: 32545, Status: models.InvoiceStatusPaid, Date: "2023-06-09"},
	{CustomerEmail: "amy@burns.com", Amount: 1250, Status: models.InvoiceStatusPaid, Date: "2023-06-17"},
	{CustomerEmail: "balazs@orban.com", Amount: 8546, Status: models.InvoiceStatusPaid, Date: "2023-06-07"},
	{CustomerEmail: "delba@oliveira.com", Amount: 500, Status: models.InvoiceStatusPaid, Date: "2023-08-19"},
	{CustomerEmail: "balazs@orban.com", Amount: 8945, Status: models.InvoiceStatusPaid, Date: "2023-06-03"},
	{CustomerEmail: "lee@robinson.com", Amount: 1000, Status: models.InvoiceStatusPaid, Date: "2022-06-05"},
}

var placeholderRevenue = []*models.Revenue{
	{Month: "Jan", Revenue: 2000},
	{Month: "Feb", Revenue: 1800},
	{Month: "Mar", Revenue: 2200},
	{Month: "Apr", Revenue: 2500},
	{Month: "May", Revenue: 2300},
	{Month: "Jun", Revenue: 3200},
	{Month: "Jul", Revenue: 3500},
	{Month: "Aug", Revenue: 3700},
	{Month: "Sep", Revenue: 2500},
	{Month: "Oct", Revenue: 2800},
	{Month: "Nov", Revenue: 3000},
	{Month: "Dec", Revenue: 4800},
}
