package search

// schemaContext is the table reference handed to the completion model so it
// can target the live schema.
const schemaContext = `Tables:
1. inventory
   - id (bigint, primary key)
   - product_name (text, indexed)
   - description (text)
   - quantity (integer)
   - unit_price (double precision)
   - category (text, indexed)
   - location (text)
   - last_updated (timestamptz)

2. suppliers
   - id (bigint, primary key)
   - name (text, indexed)
   - contact_name (text)
   - email (text)
   - phone (text)
   - address (text)
   - is_active (boolean)

3. orders
   - id (bigint, primary key)
   - order_date (timestamptz)
   - status (text, indexed) - values: pending, completed, cancelled
   - total_amount (double precision)
   - supplier_id (bigint, foreign key to suppliers.id)

4. order_items
   - id (bigint, primary key)
   - order_id (bigint, foreign key to orders.id)
   - inventory_id (bigint, foreign key to inventory.id)
   - quantity (integer)
   - unit_price (double precision)

5. users
   - id (bigint, primary key)
   - email (text, unique, indexed)
   - full_name (text)
   - role (text)
   - is_active (boolean)

6. activity_logs
   - id (bigint, primary key)
   - user_id (bigint, foreign key to users.id)
   - action (text)
   - entity_type (text) - values: inventory, order, supplier
   - entity_id (bigint)
   - details (text)
   - timestamp (timestamptz)`
